// Package db persists invoice documents. Invoices are append-only: created
// once and read by id.
package db

import (
	"context"
	"errors"

	"github.com/handyline/handyline-api/libs/go/types/business"
)

var (
	// ErrInvoiceNotFound is returned for an unknown or unparseable id.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrMalformedInvoice is returned when a stored document cannot be decoded.
	ErrMalformedInvoice = errors.New("invoice document is malformed")
)

// InvoiceStore creates and fetches invoice documents.
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, doc business.InvoiceDocument) (string, error)
	GetInvoice(ctx context.Context, id string) (*business.InvoiceDocument, error)
}
