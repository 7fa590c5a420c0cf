package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContent string
		wantTotal   string
		wantStatus  ExtractionStatus
	}{
		{
			name:        "marker with thousands separator",
			input:       "Detailed work description. [TOTAL: $1,234.56]",
			wantContent: "Detailed work description.",
			wantTotal:   "1234.56",
			wantStatus:  TotalFound,
		},
		{
			name:        "no marker",
			input:       "Patch and paint the hallway wall.",
			wantContent: "Patch and paint the hallway wall.",
			wantTotal:   "0",
			wantStatus:  TotalNotFound,
		},
		{
			name:        "non numeric amount keeps marker",
			input:       "Some work. [TOTAL: $abc]",
			wantContent: "Some work. [TOTAL: $abc]",
			wantTotal:   "0",
			wantStatus:  TotalMalformed,
		},
		{
			name:        "empty amount",
			input:       "Some work. [TOTAL: $]",
			wantContent: "Some work. [TOTAL: $]",
			wantTotal:   "0",
			wantStatus:  TotalMalformed,
		},
		{
			name:        "misplaced separators",
			input:       "Work [TOTAL: $12,34.00]",
			wantContent: "Work [TOTAL: $12,34.00]",
			wantTotal:   "0",
			wantStatus:  TotalMalformed,
		},
		{
			name:        "integer amount without space",
			input:       "Install thermostat.\n\n[TOTAL:$250]",
			wantContent: "Install thermostat.",
			wantTotal:   "250",
			wantStatus:  TotalFound,
		},
		{
			name:        "marker in the middle",
			input:       "Line one. [TOTAL: $80.5] Trailing note.",
			wantContent: "Line one.  Trailing note.",
			wantTotal:   "80.5",
			wantStatus:  TotalFound,
		},
		{
			name:        "last marker wins",
			input:       "Draft [TOTAL: $10] final [TOTAL: $1,000]",
			wantContent: "Draft [TOTAL: $10] final",
			wantTotal:   "1000",
			wantStatus:  TotalFound,
		},
		{
			name:        "lower case marker",
			input:       "Haul away. [total: $ 300.00]",
			wantContent: "Haul away.",
			wantTotal:   "300",
			wantStatus:  TotalFound,
		},
		{
			name:        "zero total is still found",
			input:       "Warranty visit. [TOTAL: $0.00]",
			wantContent: "Warranty visit.",
			wantTotal:   "0",
			wantStatus:  TotalFound,
		},
		{
			name:        "empty text",
			input:       "",
			wantContent: "",
			wantTotal:   "0",
			wantStatus:  TotalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)
			assert.Equal(t, tt.wantContent, got.Content)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tt.wantTotal)), "total %s", got.Total)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestMarkerExtractorSatisfiesTotalParser(t *testing.T) {
	var p TotalParser = NewMarkerExtractor()
	got := p.Extract("x [TOTAL: $5]")
	assert.Equal(t, "x", got.Content)
}
