package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/handyline/handyline-api/libs/go/db"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/render"
)

// RenderService loads stored invoices and builds the customer-facing quote.
type RenderService struct {
	store   interfaces.InvoiceStore
	options render.Options
	siteURL string
	logger  *logger.StructuredLogger
}

func NewRenderService(store interfaces.InvoiceStore, options render.Options, siteURL string) *RenderService {
	return &RenderService{
		store:   store,
		options: options,
		siteURL: siteURL,
		logger:  logger.NewStructuredLogger(logger.ComponentInvoice),
	}
}

// RenderInvoice returns db.ErrInvoiceNotFound for unknown ids and
// db.ErrMalformedInvoice when the stored document cannot be rendered.
func (s *RenderService) RenderInvoice(ctx context.Context, id string) (*render.Invoice, error) {
	doc, err := s.store.GetInvoice(ctx, id)
	if err != nil {
		if !errors.Is(err, db.ErrInvoiceNotFound) {
			s.logger.WithContext(ctx).WithInvoiceID(id).Error("Failed to load invoice", err)
		}
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}

	opts := s.options
	opts.QuoteURL = QuoteURL(s.siteURL, doc.ID)
	inv, err := render.Build(*doc, opts)
	if err != nil {
		s.logger.WithContext(ctx).WithInvoiceID(id).Error("Stored invoice cannot be rendered", err)
		return nil, fmt.Errorf("%w: %w", db.ErrMalformedInvoice, err)
	}
	return inv, nil
}
