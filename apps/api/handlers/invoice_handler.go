package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/render"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/api/requests"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoices interfaces.InvoiceService
	renderer interfaces.RenderService
}

// NewInvoiceHandler creates a handler with interface dependencies
func NewInvoiceHandler(invoices interfaces.InvoiceService, renderer interfaces.RenderService) *InvoiceHandler {
	return &InvoiceHandler{
		invoices: invoices,
		renderer: renderer,
	}
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Description Keeps every section with at least one line item that has content, drops empty items and persists the result
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body requests.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} responses.InvoiceCreatedResponse
// @Failure 400 {object} services.ValidationError
// @Failure 500 {object} ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req requests.CreateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.invoices.SubmitInvoice(c.Request.Context(), params.SubmitInvoiceParams{
		Customer: req.CustomerInfo.ToCustomerInfo(),
		Sections: toInvoiceSections(req.Sections),
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, responses.InvoiceCreatedResponse{ID: id})
}

// GetInvoice godoc
// @Summary Get a rendered invoice
// @Description Returns the grouped line items with subtotal, GST and total recomputed from the stored document
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} render.Invoice
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.renderer.RenderInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GetQuote godoc
// @Summary Get the customer-facing quote
// @Tags invoices
// @Produce plain
// @Produce html
// @Param invoice_id path string true "Invoice ID"
// @Param format query string false "Output format" Enums(text, html)
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoice_id}/quote [get]
func (h *InvoiceHandler) GetQuote(c *gin.Context) {
	format, err := render.ParseFormat(c.Query("format"))
	if err != nil || format == render.FormatPDF {
		sendError(c, http.StatusBadRequest, "format must be text or html", err)
		return
	}
	h.writeRendered(c, format)
}

// GetPDF godoc
// @Summary Download the quote as PDF
// @Tags invoices
// @Produce application/pdf
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoice_id}/pdf [get]
func (h *InvoiceHandler) GetPDF(c *gin.Context) {
	h.writeRendered(c, render.FormatPDF)
}

func (h *InvoiceHandler) writeRendered(c *gin.Context, format render.Format) {
	inv, err := h.renderer.RenderInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, inv, format); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to render quote", err)
		return
	}

	if format == render.FormatPDF {
		c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="quote-%s.pdf"`, inv.Number()))
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func toInvoiceSections(in []requests.InvoiceSectionRequest) []business.InvoiceSection {
	sections := make([]business.InvoiceSection, 0, len(in))
	for _, s := range in {
		items := make([]business.InvoiceLineItem, 0, len(s.Items))
		for _, item := range s.Items {
			items = append(items, business.InvoiceLineItem{Content: item.Content, Total: item.Total})
		}
		sections = append(sections, business.InvoiceSection{Type: business.SectionKind(s.Type), Items: items})
	}
	return sections
}
