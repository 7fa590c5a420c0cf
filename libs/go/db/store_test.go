package db

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func sampleDocument() business.InvoiceDocument {
	return business.InvoiceDocument{
		CustomerInfo: business.CustomerInfo{
			Name:    "Sam Lee",
			Address: "12 Birch St",
			Phone:   "+16045550101",
			Email:   "sam@example.com",
		},
		Sections: []business.InvoiceSection{
			{Type: business.SectionLabor, Items: []business.InvoiceLineItem{{Content: "x", Total: decimal.RequireFromString("500.00")}}},
			{Type: business.SectionMaterials, Items: []business.InvoiceLineItem{{Content: "y", Total: decimal.RequireFromString("200.00")}}},
		},
		Date: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}
}

func TestMemoryInvoiceStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryInvoiceStore()

	id, err := store.CreateInvoice(ctx, sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetInvoice(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Sam Lee", got.CustomerInfo.Name)
	require.Len(t, got.Sections, 2)

	t.Run("returned documents are copies", func(t *testing.T) {
		got.Sections[0].Items[0].Content = "changed"
		again, err := store.GetInvoice(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "x", again.Sections[0].Items[0].Content)
	})

	t.Run("ids are unique", func(t *testing.T) {
		other, err := store.CreateInvoice(ctx, sampleDocument())
		require.NoError(t, err)
		assert.NotEqual(t, id, other)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.GetInvoice(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestDecodeInvoiceRow(t *testing.T) {
	created := time.Date(2026, 5, 4, 10, 0, 0, 0, time.FixedZone("PDT", -7*3600))

	doc, err := decodeInvoiceRow("id-1",
		[]byte(`{"name":"Sam","address":"a","phone":"p","email":"e@x.io"}`),
		[]byte(`[{"type":"labor","items":[{"content":"x","total":"500.00"}]}]`),
		created)
	require.NoError(t, err)
	assert.Equal(t, "id-1", doc.ID)
	assert.Equal(t, time.UTC, doc.Date.Location())
	assert.True(t, doc.Sections[0].Items[0].Total.Equal(decimal.NewFromInt(500)))

	_, err = decodeInvoiceRow("id-2", []byte(`{}`), []byte(`{"not":"a list"}`), created)
	assert.True(t, errors.Is(err, ErrMalformedInvoice))
}

func TestFirestoreConversionKeepsCents(t *testing.T) {
	doc := sampleDocument()
	doc.Sections[0].Items[0].Total = decimal.RequireFromString("1234.56")
	doc.CustomerInfo.Company = "Lee Renovations"

	back := fromFirestoreInvoice("abc", toFirestoreInvoice(doc))

	assert.Equal(t, "abc", back.ID)
	assert.Equal(t, "Lee Renovations", back.CustomerInfo.Company)
	assert.Equal(t, "1234.56", back.Sections[0].Items[0].Total.String())
	assert.Equal(t, business.SectionMaterials, back.Sections[1].Type)
	assert.True(t, back.Date.Equal(doc.Date))
}

func TestPostgresGetInvoiceRejectsNonUUID(t *testing.T) {
	store := NewPostgresInvoiceStore(nil)
	_, err := store.GetInvoice(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestValidFirestoreID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"Xq3vV0cJ8pDk2mN7", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{"__reserved__", false},
		{string([]byte{0xff, 0xfe}), false},
		{strings.Repeat("a", maxFirestoreIDBytes+1), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validFirestoreID(tt.id), "id %q", tt.id)
	}
}

func TestMapFirestoreGetError(t *testing.T) {
	assert.ErrorIs(t, mapFirestoreGetError(status.Error(codes.NotFound, "missing")), ErrInvoiceNotFound)
	assert.ErrorIs(t, mapFirestoreGetError(status.Error(codes.InvalidArgument, "bad document path")), ErrInvoiceNotFound)

	err := mapFirestoreGetError(status.Error(codes.Unavailable, "try later"))
	assert.NotErrorIs(t, err, ErrInvoiceNotFound)
	assert.Contains(t, err.Error(), "failed to get invoice document")
}

func TestFirestoreGetInvoiceRejectsUnaddressableID(t *testing.T) {
	store := NewFirestoreInvoiceStore(nil)
	_, err := store.GetInvoice(context.Background(), "../invoices/x")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
