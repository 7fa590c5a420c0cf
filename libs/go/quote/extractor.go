// Package quote holds the line item authoring model and the parser that lifts
// a priced total out of generated text.
package quote

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ExtractionStatus distinguishes a parsed total from a missing or unreadable one.
type ExtractionStatus string

const (
	TotalFound     ExtractionStatus = "found"
	TotalNotFound  ExtractionStatus = "not_found"
	TotalMalformed ExtractionStatus = "malformed"
)

// Extraction is the display content and total recovered from generated text.
type Extraction struct {
	Content string           `json:"content"`
	Total   decimal.Decimal  `json:"total"`
	Status  ExtractionStatus `json:"status"`
}

// TotalParser turns generated text into an Extraction.
type TotalParser interface {
	Extract(text string) Extraction
}

var (
	totalMarkerPattern = regexp.MustCompile(`(?i)\[TOTAL:\s*\$([^\]]*)\]`)
	amountPattern      = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d+)(\.\d+)?$`)
)

// MarkerExtractor reads the trailing "[TOTAL: $1,234.56]" marker.
type MarkerExtractor struct{}

// NewMarkerExtractor returns the default TotalParser.
func NewMarkerExtractor() *MarkerExtractor {
	return &MarkerExtractor{}
}

// Extract finds the last total marker in text. A valid marker is removed and
// the remaining text trimmed. A missing or unreadable marker leaves text
// untouched with a zero total.
func (MarkerExtractor) Extract(text string) Extraction {
	matches := totalMarkerPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return Extraction{Content: text, Total: decimal.Zero, Status: TotalNotFound}
	}

	m := matches[len(matches)-1]
	raw := strings.TrimSpace(text[m[2]:m[3]])
	if !amountPattern.MatchString(raw) {
		return Extraction{Content: text, Total: decimal.Zero, Status: TotalMalformed}
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return Extraction{Content: text, Total: decimal.Zero, Status: TotalMalformed}
	}

	return Extraction{
		Content: strings.TrimSpace(text[:m[0]] + text[m[1]:]),
		Total:   amount,
		Status:  TotalFound,
	}
}

// Extract runs the default marker extractor.
func Extract(text string) Extraction {
	return MarkerExtractor{}.Extract(text)
}
