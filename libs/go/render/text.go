package render

import (
	"fmt"
	"io"
	"strings"
)

// Text writes the plain-text quote.
func Text(w io.Writer, inv *Invoice) error {
	var b strings.Builder

	if inv.BusinessName != "" {
		fmt.Fprintf(&b, "%s\n", inv.BusinessName)
	}
	fmt.Fprintf(&b, "QUOTE %s\n", inv.Number())
	fmt.Fprintf(&b, "Date: %s\n\n", inv.DateDisplay())

	b.WriteString("Bill To:\n")
	for _, v := range []string{inv.Customer.Name, inv.Customer.Company, inv.Customer.Address, inv.Customer.Phone, inv.Customer.Email} {
		if v != "" {
			fmt.Fprintf(&b, "  %s\n", v)
		}
	}
	if inv.Customer.Notes != "" {
		fmt.Fprintf(&b, "  Notes: %s\n", inv.Customer.Notes)
	}

	for _, g := range inv.Groups {
		fmt.Fprintf(&b, "\n%s\n", g.Title)
		for i, line := range g.Lines {
			content := strings.ReplaceAll(strings.TrimSpace(line.Content), "\n", "\n     ")
			fmt.Fprintf(&b, "  %d. %s\n", i+1, content)
			fmt.Fprintf(&b, "     Amount: %s\n", line.Amount)
		}
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", inv.SubtotalDisplay)
	fmt.Fprintf(&b, "%s: %s\n", inv.TaxLabel, inv.TaxDisplay)
	fmt.Fprintf(&b, "Total: %s\n", inv.TotalDisplay)

	b.WriteString("\nPayment Instructions:\n")
	for _, p := range inv.PaymentInstructions {
		fmt.Fprintf(&b, "  - %s\n", p)
	}
	if inv.QuoteURL != "" {
		fmt.Fprintf(&b, "\nView online: %s\n", inv.QuoteURL)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
