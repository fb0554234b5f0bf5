package services

import (
	"context"
	"fmt"
	"io"

	"github.com/franciscosanchezn/truckplate-api/internal/costing"
	"github.com/franciscosanchezn/truckplate-api/internal/media"
	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/notify"
	"github.com/franciscosanchezn/truckplate-api/internal/state"
	"github.com/franciscosanchezn/truckplate-api/internal/validation"
)

// InvoiceImage is an optional file attached to an invoice submission
type InvoiceImage struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// InvoiceService provides methods to record supplier invoices
type InvoiceService interface {
	// ListInvoices returns invoices newest submission first
	ListInvoices() []models.Invoice
	// RecentInvoices returns the n most recent invoices by date
	RecentInvoices(n int) []models.Invoice
	// CreateInvoice validates the form, stores the image if any and
	// prepends the invoice
	CreateInvoice(ctx context.Context, form validation.InvoiceForm, image *InvoiceImage) (models.Invoice, error)
	// DeleteInvoice removes an invoice; an unknown id is not an error
	DeleteInvoice(id string) error
}

// invoiceService is the implementation of the InvoiceService interface
type invoiceService struct {
	store  *state.Store
	images media.ImageStore
	notice *notify.Center
}

// NewInvoiceService creates a new instance of InvoiceService
func NewInvoiceService(store *state.Store, images media.ImageStore, notice *notify.Center) InvoiceService {
	return &invoiceService{store: store, images: images, notice: notice}
}

func (s *invoiceService) ListInvoices() []models.Invoice {
	return s.store.Snapshot().Invoices
}

func (s *invoiceService) RecentInvoices(n int) []models.Invoice {
	return costing.RecentInvoices(s.store.Snapshot().Invoices, n)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, form validation.InvoiceForm, image *InvoiceImage) (models.Invoice, error) {
	if err := validationError(validation.ValidateInvoice(form)); err != nil {
		return models.Invoice{}, err
	}

	inv := form.ToInvoice()
	if image != nil && image.Body != nil {
		ref, err := s.images.Put(ctx, image.Name, image.ContentType, image.Body)
		if err != nil {
			s.notice.Error(notify.MsgInvoiceImageBad)
			return models.Invoice{}, fmt.Errorf("invoice image: %w", err)
		}
		inv.ImageURL = ref
	}

	inv.ID = s.store.AddInvoice(inv)
	s.notice.Success(notify.MsgInvoiceUploaded)
	return inv, nil
}

func (s *invoiceService) DeleteInvoice(id string) error {
	if s.store.RemoveInvoice(id) {
		s.notice.Success(notify.MsgInvoiceRemoved)
	}
	return nil
}
