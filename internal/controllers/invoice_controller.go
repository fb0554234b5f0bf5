package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/truckplate-api/internal/costing"
	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/services"
	"github.com/franciscosanchezn/truckplate-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// InvoiceController handles HTTP requests related to supplier invoices
type InvoiceController interface {
	// ListInvoices retrieves every invoice
	ListInvoices(c *gin.Context)
	// RecentInvoices retrieves the latest invoices by date
	RecentInvoices(c *gin.Context)
	// CreateInvoice uploads an invoice
	CreateInvoice(c *gin.Context)
	// DeleteInvoice deletes an invoice by its ID
	DeleteInvoice(c *gin.Context)
}

type invoiceController struct {
	service services.InvoiceService
}

// NewInvoiceController creates a new instance of InvoiceController
func NewInvoiceController(service services.InvoiceService) InvoiceController {
	return &invoiceController{service: service}
}

// ListInvoices godoc
// @Summary List invoices
// @Description List invoices, most recently uploaded first
// @Tags invoices
// @Produce json
// @Success 200 {array} models.Invoice
// @Router /api/v1/invoices [get]
func (c *invoiceController) ListInvoices(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.ListInvoices())
}

// RecentInvoices godoc
// @Summary List recent invoices
// @Description List the most recent invoices by invoice date
// @Tags invoices
// @Produce json
// @Param limit query int false "How many invoices to return" default(3)
// @Success 200 {array} models.Invoice
// @Failure 400 {object} models.APIError
// @Router /api/v1/invoices/recent [get]
func (c *invoiceController) RecentInvoices(ctx *gin.Context) {
	limit := costing.RecentInvoiceCount
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(ctx, "Invalid limit")
			return
		}
		limit = n
	}
	ctx.JSON(http.StatusOK, c.service.RecentInvoices(limit))
}

// CreateInvoice godoc
// @Summary Upload an invoice
// @Description Accepts a JSON body, or a multipart form with an optional image or PDF in the "image" field
// @Tags invoices
// @Accept json,mpfd
// @Produce json
// @Param invoice body validation.InvoiceForm false "Invoice form (JSON)"
// @Param supplier formData string false "Supplier name"
// @Param amount formData string false "Invoice total"
// @Param date formData string false "Invoice date, YYYY-MM-DD"
// @Param items formData string false "Items, separated by commas or new lines"
// @Param image formData file false "Invoice image or PDF"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} models.APIError
// @Failure 413 {object} models.APIError
// @Failure 429 {object} models.APIError
// @Router /api/v1/invoices [post]
func (c *invoiceController) CreateInvoice(ctx *gin.Context) {
	var form validation.InvoiceForm
	var image *services.InvoiceImage

	if ctx.ContentType() == binding.MIMEMultipartPOSTForm {
		if err := ctx.ShouldBindWith(&form, binding.FormMultipart); err != nil {
			badRequest(ctx, "Invalid form data")
			return
		}
		header, err := ctx.FormFile("image")
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			badRequest(ctx, "Invalid image upload")
			return
		default:
			file, err := header.Open()
			if err != nil {
				badRequest(ctx, "Invalid image upload")
				return
			}
			defer file.Close()
			image = &services.InvoiceImage{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			}
		}
	} else if err := ctx.ShouldBindJSON(&form); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	inv, err := c.service.CreateInvoice(ctx.Request.Context(), form, image)
	if err != nil {
		respondError(ctx, err, models.ErrInvoiceNotFound)
		return
	}
	ctx.JSON(http.StatusCreated, inv)
}

// DeleteInvoice godoc
// @Summary Delete an invoice
// @Description Delete an invoice by its ID. Deleting an unknown ID is a no-op.
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 429 {object} models.APIError
// @Router /api/v1/invoices/{id} [delete]
func (c *invoiceController) DeleteInvoice(ctx *gin.Context) {
	if err := c.service.DeleteInvoice(ctx.Param("id")); err != nil {
		respondError(ctx, err, models.ErrInvoiceNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
