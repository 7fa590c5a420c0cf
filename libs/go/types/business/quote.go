package business

import (
	"fmt"
	"strings"
	"time"

	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/shopspring/decimal"
)

// SectionKind is one of the fixed invoice groupings.
type SectionKind string

const (
	SectionLabor     SectionKind = constants.SectionLabor
	SectionMaterials SectionKind = constants.SectionMaterials
	SectionEquipment SectionKind = constants.SectionEquipment
)

// SectionKinds lists every section kind in display order.
var SectionKinds = []SectionKind{SectionLabor, SectionMaterials, SectionEquipment}

// Valid reports whether k is a known section kind.
func (k SectionKind) Valid() bool {
	switch k {
	case SectionLabor, SectionMaterials, SectionEquipment:
		return true
	default:
		return false
	}
}

// Title returns the display heading for the section.
func (k SectionKind) Title() string {
	switch k {
	case SectionLabor:
		return "Labor"
	case SectionMaterials:
		return "Materials"
	case SectionEquipment:
		return "Equipment"
	default:
		return string(k)
	}
}

// Order returns the display position of k, or -1 when unknown.
func (k SectionKind) Order() int {
	for i, kind := range SectionKinds {
		if kind == k {
			return i
		}
	}
	return -1
}

// ParseSectionKind accepts a section kind in any letter case.
func ParseSectionKind(s string) (SectionKind, error) {
	k := SectionKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown section kind %q", s)
	}
	return k, nil
}

// CustomerInfo is the bill-to block of an invoice.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// InvoiceLineItem is a persisted line: generated content and its total.
type InvoiceLineItem struct {
	Content string          `json:"content"`
	Total   decimal.Decimal `json:"total"`
}

// InvoiceSection groups persisted line items under a section kind.
type InvoiceSection struct {
	Type  SectionKind       `json:"type"`
	Items []InvoiceLineItem `json:"items"`
}

// InvoiceDocument is the immutable persisted invoice. No totals are stored;
// they are always recomputed from the line items.
type InvoiceDocument struct {
	ID           string           `json:"id"`
	CustomerInfo CustomerInfo     `json:"customerInfo"`
	Sections     []InvoiceSection `json:"sections"`
	Date         time.Time        `json:"date"`
}
