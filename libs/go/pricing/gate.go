package pricing

import "github.com/shopspring/decimal"

var minimumOrderTotal = decimal.NewFromInt(250)

// MinimumOrderTotal is the smallest minTotal accepted for checkout.
func MinimumOrderTotal() decimal.Decimal {
	return minimumOrderTotal
}

// MeetsMinimum reports whether a selection may progress to customer details.
func MeetsMinimum(totals Totals) bool {
	return totals.MinTotal.GreaterThanOrEqual(minimumOrderTotal)
}
