// Package render turns a stored invoice document into the customer-facing
// quote in text, HTML or PDF form.
package render

import (
	"fmt"
	"time"

	"github.com/handyline/handyline-api/libs/go/helpers"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const taxLabel = "GST (5%)"

var (
	taxRate          = decimal.RequireFromString("0.05")
	grandTotalFactor = decimal.NewFromInt(1).Add(taxRate)
)

// TaxRate is the GST applied to every quote.
func TaxRate() decimal.Decimal {
	return taxRate
}

// TaxLabel is printed beside the tax amount.
func TaxLabel() string {
	return taxLabel
}

// ErrMalformedDocument is returned when a stored document cannot be rendered.
var ErrMalformedDocument = errors.New("invoice document cannot be rendered")

// DefaultPaymentInstructions are printed at the bottom of every quote.
var DefaultPaymentInstructions = []string{
	"Interac e-Transfer to payments@handyline.ca (auto-deposit enabled).",
	"Cheques payable to Handyline Home Services Ltd.",
	"Credit card payments accepted on site. A 3% processing fee applies.",
	"A 25% deposit confirms your booking. The balance is due on completion.",
}

// Options controls the static parts of a rendered quote.
type Options struct {
	BusinessName        string
	PaymentInstructions []string
	QuoteURL            string
}

// Line is one rendered line item.
type Line struct {
	Content string          `json:"content"`
	Total   decimal.Decimal `json:"total"`
	Amount  string          `json:"amount"`
}

// Group collects the lines of one section kind.
type Group struct {
	Kind  business.SectionKind `json:"kind"`
	Title string               `json:"title"`
	Lines []Line               `json:"lines"`
}

// Invoice is the rendered view of a stored document. Amounts keep full
// precision; the *Display strings are rounded to cents.
type Invoice struct {
	ID                  string                `json:"id"`
	BusinessName        string                `json:"business_name"`
	Date                time.Time             `json:"date"`
	Customer            business.CustomerInfo `json:"customer"`
	Groups              []Group               `json:"groups"`
	Subtotal            decimal.Decimal       `json:"-"`
	Tax                 decimal.Decimal       `json:"-"`
	GrandTotal          decimal.Decimal       `json:"-"`
	SubtotalDisplay     string                `json:"subtotal"`
	TaxLabel            string                `json:"tax_label"`
	TaxDisplay          string                `json:"tax"`
	TotalDisplay        string                `json:"total"`
	PaymentInstructions []string              `json:"payment_instructions"`
	QuoteURL            string                `json:"quote_url,omitempty"`
}

// Build groups the document by section kind and computes its totals from the
// line items.
func Build(doc business.InvoiceDocument, opts Options) (*Invoice, error) {
	byKind := make(map[business.SectionKind][]Line, len(business.SectionKinds))
	subtotal := decimal.Zero

	for i, sec := range doc.Sections {
		if !sec.Type.Valid() {
			return nil, errors.Wrapf(ErrMalformedDocument, "section %d has unknown type %q", i, sec.Type)
		}
		for j, item := range sec.Items {
			if item.Total.IsNegative() {
				return nil, errors.Wrapf(ErrMalformedDocument, "section %s item %d has negative total", sec.Type, j)
			}
			byKind[sec.Type] = append(byKind[sec.Type], Line{
				Content: item.Content,
				Total:   item.Total,
				Amount:  helpers.FormatCurrency(item.Total),
			})
			subtotal = subtotal.Add(item.Total)
		}
	}

	inv := &Invoice{
		ID:                  doc.ID,
		BusinessName:        opts.BusinessName,
		Date:                doc.Date,
		Customer:            doc.CustomerInfo,
		Subtotal:            subtotal,
		Tax:                 subtotal.Mul(taxRate),
		GrandTotal:          subtotal.Mul(grandTotalFactor),
		TaxLabel:            taxLabel,
		PaymentInstructions: opts.PaymentInstructions,
		QuoteURL:            opts.QuoteURL,
	}
	if len(inv.PaymentInstructions) == 0 {
		inv.PaymentInstructions = DefaultPaymentInstructions
	}
	inv.SubtotalDisplay = helpers.FormatAmount(inv.Subtotal)
	inv.TaxDisplay = helpers.FormatAmount(inv.Tax)
	inv.TotalDisplay = helpers.FormatAmount(inv.GrandTotal)

	for _, kind := range business.SectionKinds {
		lines := byKind[kind]
		if len(lines) == 0 {
			continue
		}
		inv.Groups = append(inv.Groups, Group{Kind: kind, Title: kind.Title(), Lines: lines})
	}
	return inv, nil
}

// DateDisplay formats the quote date.
func (inv *Invoice) DateDisplay() string {
	return inv.Date.UTC().Format("January 2, 2006")
}

// Number is the short reference printed on the quote.
func (inv *Invoice) Number() string {
	if len(inv.ID) > 8 {
		return fmt.Sprintf("Q-%s", inv.ID[:8])
	}
	return fmt.Sprintf("Q-%s", inv.ID)
}
