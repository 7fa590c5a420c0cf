package db

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/firestore"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InvoicesCollection is the Firestore collection holding invoice documents.
const InvoicesCollection = "invoices"

type firestoreLineItem struct {
	Content string  `firestore:"content"`
	Total   float64 `firestore:"total"`
}

type firestoreSection struct {
	Type  string              `firestore:"type"`
	Items []firestoreLineItem `firestore:"items"`
}

type firestoreCustomer struct {
	Name    string `firestore:"name"`
	Address string `firestore:"address"`
	Phone   string `firestore:"phone"`
	Email   string `firestore:"email"`
	Company string `firestore:"company,omitempty"`
	Notes   string `firestore:"notes,omitempty"`
}

type firestoreInvoice struct {
	CustomerInfo firestoreCustomer  `firestore:"customerInfo"`
	Sections     []firestoreSection `firestore:"sections"`
	Date         time.Time          `firestore:"date"`
}

// FirestoreInvoiceStore keeps invoices as documents with auto-generated ids.
// Totals are stored as numbers, matching documents written by the website.
type FirestoreInvoiceStore struct {
	client *firestore.Client
}

// NewFirestoreClient opens a client for projectID using ambient credentials.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}
	return client, nil
}

// NewFirestoreInvoiceStore wraps client.
func NewFirestoreInvoiceStore(client *firestore.Client) *FirestoreInvoiceStore {
	return &FirestoreInvoiceStore{client: client}
}

// CreateInvoice adds a new document and returns its generated id.
func (s *FirestoreInvoiceStore) CreateInvoice(ctx context.Context, doc business.InvoiceDocument) (string, error) {
	ref, _, err := s.client.Collection(InvoicesCollection).Add(ctx, toFirestoreInvoice(doc))
	if err != nil {
		return "", errors.Wrap(err, "failed to add invoice document")
	}
	return ref.ID, nil
}

// GetInvoice fetches a document by id. Ids Firestore cannot address are
// reported as not found.
func (s *FirestoreInvoiceStore) GetInvoice(ctx context.Context, id string) (*business.InvoiceDocument, error) {
	if !validFirestoreID(id) {
		return nil, ErrInvoiceNotFound
	}
	snap, err := s.client.Collection(InvoicesCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreGetError(err)
	}

	var rec firestoreInvoice
	if err := snap.DataTo(&rec); err != nil {
		return nil, errors.Wrapf(ErrMalformedInvoice, "%v", err)
	}
	return fromFirestoreInvoice(snap.Ref.ID, rec), nil
}

const maxFirestoreIDBytes = 1500

func validFirestoreID(id string) bool {
	if id == "" || id == "." || id == ".." || len(id) > maxFirestoreIDBytes {
		return false
	}
	if strings.Contains(id, "/") || !utf8.ValidString(id) {
		return false
	}
	return !(strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"))
}

func mapFirestoreGetError(err error) error {
	switch status.Code(err) {
	case codes.NotFound, codes.InvalidArgument:
		return ErrInvoiceNotFound
	}
	return errors.Wrap(err, "failed to get invoice document")
}

func toFirestoreInvoice(doc business.InvoiceDocument) firestoreInvoice {
	c := doc.CustomerInfo
	rec := firestoreInvoice{
		CustomerInfo: firestoreCustomer{
			Name: c.Name, Address: c.Address, Phone: c.Phone,
			Email: c.Email, Company: c.Company, Notes: c.Notes,
		},
		Date: doc.Date,
	}
	for _, sec := range doc.Sections {
		fs := firestoreSection{Type: string(sec.Type)}
		for _, item := range sec.Items {
			total, _ := item.Total.Float64()
			fs.Items = append(fs.Items, firestoreLineItem{Content: item.Content, Total: total})
		}
		rec.Sections = append(rec.Sections, fs)
	}
	return rec
}

func fromFirestoreInvoice(id string, rec firestoreInvoice) *business.InvoiceDocument {
	c := rec.CustomerInfo
	doc := &business.InvoiceDocument{
		ID: id,
		CustomerInfo: business.CustomerInfo{
			Name: c.Name, Address: c.Address, Phone: c.Phone,
			Email: c.Email, Company: c.Company, Notes: c.Notes,
		},
		Date: rec.Date.UTC(),
	}
	for _, fs := range rec.Sections {
		sec := business.InvoiceSection{Type: business.SectionKind(fs.Type)}
		for _, item := range fs.Items {
			sec.Items = append(sec.Items, business.InvoiceLineItem{
				Content: item.Content,
				Total:   decimal.NewFromFloat(item.Total),
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}
