package interfaces

import (
	"context"
	"io"

	"github.com/handyline/handyline-api/libs/go/client/generation"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// TextGenerator produces free text from a prompt
type TextGenerator interface {
	Generate(ctx context.Context, req generation.GenerateRequest) (string, error)
}

// InvoiceStore persists invoice documents
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, doc business.InvoiceDocument) (string, error)
	GetInvoice(ctx context.Context, id string) (*business.InvoiceDocument, error)
}

// LeadSender delivers a lead to the CRM board
type LeadSender interface {
	CreateLead(ctx context.Context, lead business.Lead) error
}

// QueuePublisher publishes a JSON payload to a queue and returns the message id
type QueuePublisher interface {
	Publish(ctx context.Context, payload interface{}, attributes map[string]string) (string, error)
}

// ObjectUploader stores an object and returns its public URL
type ObjectUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
