package models

// InvoiceStatus is the processing state of a supplier invoice
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoiceProcessed InvoiceStatus = "processed"
	InvoiceArchived  InvoiceStatus = "archived"
)

// Valid reports whether the status is one of the known values
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePending, InvoiceProcessed, InvoiceArchived:
		return true
	}
	return false
}

// DateLayout is the calendar date format used for invoice dates
const DateLayout = "2006-01-02"

// LineItem is one purchased item on an invoice
type LineItem struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
}

// Invoice represents a supplier invoice
type Invoice struct {
	ID       string        `json:"id" validate:"required"`
	Supplier string        `json:"supplier" validate:"required"`
	Date     string        `json:"date" validate:"required,datetime=2006-01-02"`
	Total    float64       `json:"total" validate:"gte=0"`
	Items    []LineItem    `json:"items" validate:"dive"`
	ImageURL string        `json:"imageUrl,omitempty"`
	Status   InvoiceStatus `json:"status"`
}
