package requests

import (
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// CustomerRequest is the customer block shared by invoice, order and session submissions
type CustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ToCustomerInfo converts the request into the persisted customer shape
func (r CustomerRequest) ToCustomerInfo() business.CustomerInfo {
	return business.CustomerInfo{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Company: r.Company,
		Notes:   r.Notes,
	}
}

// EnhanceLineItemRequest is the body of a stateless enhancement call
type EnhanceLineItemRequest struct {
	Section        string   `json:"section"`
	RawInput       string   `json:"raw_input"`
	AttachmentURLs []string `json:"attachment_urls,omitempty"`
}

// LineItemRequest is the body of an add or edit item call
type LineItemRequest struct {
	RawInput string `json:"raw_input"`
}

// EnhanceItemRequest is the optional body of a session item enhancement
type EnhanceItemRequest struct {
	AttachmentURLs []string `json:"attachment_urls,omitempty"`
}

// SectionStateRequest toggles a section open or closed
type SectionStateRequest struct {
	Expanded bool `json:"expanded"`
}

// InvoiceLineItemRequest is one finished line item
type InvoiceLineItemRequest struct {
	Content string          `json:"content"`
	Total   decimal.Decimal `json:"total"`
}

// InvoiceSectionRequest is one section of a submitted invoice
type InvoiceSectionRequest struct {
	Type  string                   `json:"type"`
	Items []InvoiceLineItemRequest `json:"items"`
}

// CreateInvoiceRequest is the body of a stateless invoice submission
type CreateInvoiceRequest struct {
	CustomerInfo CustomerRequest         `json:"customerInfo"`
	Sections     []InvoiceSectionRequest `json:"sections"`
}

// SubmitSessionRequest is the body of a session submission
type SubmitSessionRequest struct {
	CustomerInfo CustomerRequest `json:"customerInfo"`
}

// EstimateRequest is the body of an order estimate
type EstimateRequest struct {
	Selections []params.SelectionDelta `json:"selections"`
}

// CreateOrderRequest is the body of an order submission
type CreateOrderRequest struct {
	Name          string                  `json:"name"`
	Email         string                  `json:"email"`
	Phone         string                  `json:"phone"`
	Address       string                  `json:"address"`
	PreferredDate string                  `json:"preferred_date,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	Selections    []params.SelectionDelta `json:"selections"`
}

// CreateLeadRequest is the body of the contact and quote request forms
type CreateLeadRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address,omitempty"`
	ServiceCategory string `json:"service_category,omitempty"`
	Message         string `json:"message,omitempty"`
	Source          string `json:"source"`
}
