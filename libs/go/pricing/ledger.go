// Package pricing tracks order-form selections and the minimum order rule.
package pricing

import (
	"sort"

	"github.com/handyline/handyline-api/libs/go/catalog"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps the quantity of any one selected service.
const MaxQuantity = 999

// Totals is the aggregate price band of a selection.
type Totals struct {
	MinTotal decimal.Decimal `json:"min_total"`
	MaxTotal decimal.Decimal `json:"max_total"`
}

// Selection is one selected service and its quantity.
type Selection struct {
	ServiceName string `json:"service_name"`
	Quantity    int    `json:"quantity"`
}

// Ledger maps selected service names to quantities. Entries never hold a
// quantity below one. A Ledger belongs to a single session and is not safe
// for concurrent use.
type Ledger struct {
	quantities map[string]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{quantities: make(map[string]int)}
}

// SetQuantity applies delta to the quantity of serviceName, clamping to
// [0, MaxQuantity]. An entry that reaches zero is removed.
func (l *Ledger) SetQuantity(serviceName string, delta int) int {
	current := l.quantities[serviceName]
	var next int
	switch {
	case delta >= MaxQuantity-current:
		next = MaxQuantity
	case delta <= -current:
		next = 0
	default:
		next = current + delta
	}
	if next <= 0 {
		delete(l.quantities, serviceName)
		return 0
	}
	l.quantities[serviceName] = next
	return next
}

// Quantity returns the current quantity, zero when not selected.
func (l *Ledger) Quantity(serviceName string) int {
	return l.quantities[serviceName]
}

// Len returns the number of selected services.
func (l *Ledger) Len() int {
	return len(l.quantities)
}

// Entries returns the selections sorted by service name.
func (l *Ledger) Entries() []Selection {
	out := make([]Selection, 0, len(l.quantities))
	for name, qty := range l.quantities {
		out = append(out, Selection{ServiceName: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ServiceName < out[j].ServiceName })
	return out
}

// ComputeTotals sums price band times quantity over every selection.
// Services the catalog does not know contribute nothing.
func (l *Ledger) ComputeTotals(prices catalog.Lookup) Totals {
	totals := Totals{MinTotal: decimal.Zero, MaxTotal: decimal.Zero}
	for name, qty := range l.quantities {
		entry, ok := prices.Lookup(name)
		if !ok {
			continue
		}
		q := decimal.NewFromInt(int64(qty))
		totals.MinTotal = totals.MinTotal.Add(entry.MinPrice.Mul(q))
		totals.MaxTotal = totals.MaxTotal.Add(entry.MaxPrice.Mul(q))
	}
	return totals
}
