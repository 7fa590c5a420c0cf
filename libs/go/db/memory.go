package db

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/handyline/handyline-api/libs/go/types/business"
)

// MemoryInvoiceStore keeps invoices in process memory. Used for local runs
// and tests.
type MemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]business.InvoiceDocument
}

// NewMemoryInvoiceStore returns an empty store.
func NewMemoryInvoiceStore() *MemoryInvoiceStore {
	return &MemoryInvoiceStore{invoices: make(map[string]business.InvoiceDocument)}
}

// CreateInvoice assigns a new id and stores a copy of doc.
func (s *MemoryInvoiceStore) CreateInvoice(ctx context.Context, doc business.InvoiceDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	doc.ID = uuid.NewString()

	s.mu.Lock()
	s.invoices[doc.ID] = cloneDocument(doc)
	s.mu.Unlock()
	return doc.ID, nil
}

// GetInvoice returns a copy of the stored document.
func (s *MemoryInvoiceStore) GetInvoice(ctx context.Context, id string) (*business.InvoiceDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	doc, ok := s.invoices[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	out := cloneDocument(doc)
	return &out, nil
}

func cloneDocument(doc business.InvoiceDocument) business.InvoiceDocument {
	out := doc
	out.Sections = make([]business.InvoiceSection, len(doc.Sections))
	for i, sec := range doc.Sections {
		out.Sections[i] = business.InvoiceSection{
			Type:  sec.Type,
			Items: append([]business.InvoiceLineItem(nil), sec.Items...),
		}
	}
	return out
}
