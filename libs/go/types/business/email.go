package business

// QuoteReadyEmail is the data rendered into the quote notification email.
type QuoteReadyEmail struct {
	CustomerName  string
	CustomerEmail string
	InvoiceID     string
	QuoteURL      string
	Total         string
	BusinessName  string
}
