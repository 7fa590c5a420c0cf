package interfaces

import (
	"context"

	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/render"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// LineItemEnhancer turns a rough description into a priced line item
type LineItemEnhancer interface {
	Enhance(ctx context.Context, params params.EnhanceParams) (*responses.EnhancementResult, error)
}

// InvoiceService assembles and persists invoices
type InvoiceService interface {
	SubmitInvoice(ctx context.Context, params params.SubmitInvoiceParams) (string, error)
	GetInvoice(ctx context.Context, id string) (*business.InvoiceDocument, error)
}

// RenderService produces the customer-facing quote for a stored invoice
type RenderService interface {
	RenderInvoice(ctx context.Context, id string) (*render.Invoice, error)
}

// QuoteSessionService manages in-progress quotes
type QuoteSessionService interface {
	CreateSession() (quote.Snapshot, error)
	GetSession(sessionID string) (quote.Snapshot, error)
	AddItem(sessionID string, section business.SectionKind, rawInput string) (quote.LineItem, error)
	UpdateItem(sessionID string, section business.SectionKind, itemID, rawInput string) (quote.LineItem, error)
	RemoveItem(sessionID string, section business.SectionKind, itemID string) (bool, error)
	SetExpanded(sessionID string, section business.SectionKind, expanded bool) error
	EnhanceItem(params params.EnhanceItemParams) (quote.LineItem, error)
	EnhanceAll(ctx context.Context, sessionID string) (int, error)
	SubmitSession(ctx context.Context, sessionID string, customer business.CustomerInfo) (string, error)
}

// LeadService forwards leads to the CRM
type LeadService interface {
	Dispatch(ctx context.Context, lead business.Lead)
	Forward(ctx context.Context, lead business.Lead) error
}

// OrderService prices and places fixed-price orders
type OrderService interface {
	Estimate(selections []params.SelectionDelta) *responses.EstimateResponse
	PlaceOrder(ctx context.Context, params params.PlaceOrderParams) (*responses.OrderResponse, error)
}

// AttachmentService stores photos attached to line items
type AttachmentService interface {
	Upload(ctx context.Context, params params.AttachmentUploadParams) (*responses.AttachmentResponse, error)
}

// QuoteNotifier tells a customer their quote is ready
type QuoteNotifier interface {
	SendQuoteReady(ctx context.Context, email business.QuoteReadyEmail) error
}
