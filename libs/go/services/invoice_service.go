package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/render"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// NotificationTimeout bounds the quote ready email sent after submission.
const NotificationTimeout = 30 * time.Second

// InvoiceServiceConfig holds the static settings of the invoice service.
type InvoiceServiceConfig struct {
	SiteURL      string
	BusinessName string
}

// InvoiceService assembles submitted sections into an invoice document and
// persists it.
type InvoiceService struct {
	store    interfaces.InvoiceStore
	notifier interfaces.QuoteNotifier
	config   InvoiceServiceConfig
	now      func() time.Time
	logger   *logger.StructuredLogger
	wg       sync.WaitGroup
}

// NewInvoiceService creates an invoice service. notifier may be nil.
func NewInvoiceService(store interfaces.InvoiceStore, notifier interfaces.QuoteNotifier, config InvoiceServiceConfig) *InvoiceService {
	return &InvoiceService{
		store:    store,
		notifier: notifier,
		config:   config,
		now:      time.Now,
		logger:   logger.NewStructuredLogger(logger.ComponentInvoice),
	}
}

// QuoteURL is the public page of a quote.
func QuoteURL(siteURL, id string) string {
	if siteURL == "" {
		return ""
	}
	return strings.TrimRight(siteURL, "/") + "/quote/" + id
}

// FilterSections keeps every section that has at least one item with
// content, and within it only the items with content, in order.
func FilterSections(sections []business.InvoiceSection) []business.InvoiceSection {
	out := make([]business.InvoiceSection, 0, len(sections))
	for _, sec := range sections {
		var items []business.InvoiceLineItem
		for _, item := range sec.Items {
			if strings.TrimSpace(item.Content) == "" {
				continue
			}
			items = append(items, item)
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, business.InvoiceSection{Type: sec.Type, Items: items})
	}
	return out
}

// SubmitInvoice validates and persists a new invoice and returns its id.
func (s *InvoiceService) SubmitInvoice(ctx context.Context, p params.SubmitInvoiceParams) (string, error) {
	ve := &ValidationError{}
	validateCustomerInto(ve, p.Customer)
	for i, sec := range p.Sections {
		if !sec.Type.Valid() {
			ve.add(fmt.Sprintf("sections[%d].type", i), "section type must be one of labor, materials, equipment")
			continue
		}
		for j, item := range sec.Items {
			if item.Total.IsNegative() {
				ve.add(fmt.Sprintf("sections[%d].items[%d].total", i, j), "total must not be negative")
			}
		}
	}
	sections := FilterSections(p.Sections)
	if len(sections) == 0 {
		ve.add("sections", "at least one line item with content is required")
	}
	if err := ve.orNil(); err != nil {
		return "", err
	}

	doc := business.InvoiceDocument{
		CustomerInfo: trimCustomer(p.Customer),
		Sections:     sections,
		Date:         s.now().UTC(),
	}

	id, err := s.store.CreateInvoice(ctx, doc)
	if err != nil {
		s.logger.WithContext(ctx).Error("Failed to persist invoice", err)
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	doc.ID = id

	s.logger.WithContext(ctx).WithInvoiceID(id).WithFields(map[string]interface{}{
		"sections": len(sections),
	}).Info("Invoice created")

	s.notifyQuoteReady(ctx, doc)
	return id, nil
}

// GetInvoice returns a stored invoice document.
func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*business.InvoiceDocument, error) {
	doc, err := s.store.GetInvoice(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return doc, nil
}

// Wait blocks until pending notifications have finished.
func (s *InvoiceService) Wait() {
	s.wg.Wait()
}

func (s *InvoiceService) notifyQuoteReady(ctx context.Context, doc business.InvoiceDocument) {
	if s.notifier == nil {
		return
	}
	email := business.QuoteReadyEmail{
		CustomerName:  doc.CustomerInfo.Name,
		CustomerEmail: doc.CustomerInfo.Email,
		InvoiceID:     doc.ID,
		QuoteURL:      QuoteURL(s.config.SiteURL, doc.ID),
		BusinessName:  s.config.BusinessName,
	}
	if inv, err := render.Build(doc, render.Options{}); err == nil {
		email.Total = inv.TotalDisplay
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), NotificationTimeout)
		defer cancel()
		if err := s.notifier.SendQuoteReady(nctx, email); err != nil {
			s.logger.WithContext(ctx).WithInvoiceID(doc.ID).Error("Failed to send quote ready email", err)
		}
	}()
}
