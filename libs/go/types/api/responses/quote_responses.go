package responses

import (
	"github.com/handyline/handyline-api/libs/go/catalog"
	"github.com/handyline/handyline-api/libs/go/pricing"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/shopspring/decimal"
)

// EnhancementResult is a generated line item
type EnhancementResult struct {
	Content     string                 `json:"content"`
	Total       decimal.Decimal        `json:"total"`
	TotalStatus quote.ExtractionStatus `json:"total_status"`
}

// EstimateResponse is the priced selection of an order form
type EstimateResponse struct {
	Selections        []pricing.Selection `json:"selections"`
	UnknownServices   []string            `json:"unknown_services,omitempty"`
	MinTotal          decimal.Decimal     `json:"min_total"`
	MaxTotal          decimal.Decimal     `json:"max_total"`
	MinimumOrderTotal decimal.Decimal     `json:"minimum_order_total"`
	MeetsMinimum      bool                `json:"meets_minimum"`
}

// OrderResponse is returned once an order has been accepted
type OrderResponse struct {
	Status   string            `json:"status"`
	Estimate *EstimateResponse `json:"estimate"`
}

// AttachmentResponse describes a stored attachment
type AttachmentResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// InvoiceCreatedResponse carries the id of a new invoice
type InvoiceCreatedResponse struct {
	ID string `json:"id"`
}

// EnhanceAllResponse reports how many items were sent for enhancement
type EnhanceAllResponse struct {
	Started  int            `json:"started"`
	Snapshot quote.Snapshot `json:"session"`
}

// RemoveItemResponse reports whether an item was removed
type RemoveItemResponse struct {
	Removed  bool           `json:"removed"`
	Snapshot quote.Snapshot `json:"session"`
}

// AcceptedResponse is a generic 202 body
type AcceptedResponse struct {
	Status string `json:"status"`
}

// HealthResponse is the liveness check body
type HealthResponse struct {
	Status string `json:"status"`
}

// CatalogResponse lists the order form services by category
type CatalogResponse struct {
	Categories        []catalog.Category `json:"categories"`
	MinimumOrderTotal decimal.Decimal    `json:"minimum_order_total"`
}
