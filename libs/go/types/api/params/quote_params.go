package params

import (
	"io"

	"github.com/handyline/handyline-api/libs/go/types/business"
)

// EnhanceParams contains parameters for a single enhancement call
type EnhanceParams struct {
	Section        business.SectionKind
	RawInput       string
	AttachmentURLs []string
}

// EnhanceItemParams identifies a session item to enhance
type EnhanceItemParams struct {
	SessionID      string
	Section        business.SectionKind
	ItemID         string
	AttachmentURLs []string
}

// SubmitInvoiceParams contains the customer and sections of a new invoice
type SubmitInvoiceParams struct {
	Customer business.CustomerInfo
	Sections []business.InvoiceSection
}

// SelectionDelta is a quantity change for one catalog service
type SelectionDelta struct {
	ServiceName string `json:"service_name"`
	Delta       int    `json:"delta" minimum:"-999" maximum:"999"`
}

// PlaceOrderParams contains parameters for a fixed-price order
type PlaceOrderParams struct {
	Customer      business.CustomerInfo
	Selections    []SelectionDelta
	PreferredDate string
}

// AttachmentUploadParams describes an uploaded file
type AttachmentUploadParams struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}
