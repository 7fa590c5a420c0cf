// Package catalog holds the static service price bands offered on the order form.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry is a single priced service.
type Entry struct {
	Category    string          `json:"category"`
	ServiceName string          `json:"service_name"`
	MinPrice    decimal.Decimal `json:"min_price"`
	MaxPrice    decimal.Decimal `json:"max_price"`
	Note        string          `json:"note,omitempty"`
}

// Category groups entries under a heading, in document order.
type Category struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"services"`
}

// Lookup resolves a service name to its price band.
type Lookup interface {
	Lookup(serviceName string) (Entry, bool)
}

// Catalog is immutable once loaded.
type Catalog struct {
	categories []Category
	byName     map[string]Entry
}

type rawCatalog struct {
	Categories []struct {
		Name     string `yaml:"name"`
		Services []struct {
			Name string `yaml:"name"`
			Min  string `yaml:"min"`
			Max  string `yaml:"max"`
			Note string `yaml:"note"`
		} `yaml:"services"`
	} `yaml:"categories"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

// MustDefault is Default for package initialisation; it panics on a broken embed.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load parses a YAML catalog document and validates every price band.
func Load(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]Entry)}
	for _, rc := range raw.Categories {
		name := strings.TrimSpace(rc.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog category without a name")
		}
		cat := Category{Name: name}
		seen := make(map[string]bool, len(rc.Services))
		for _, rs := range rc.Services {
			svc := strings.TrimSpace(rs.Name)
			if svc == "" {
				return nil, fmt.Errorf("category %q: service without a name", name)
			}
			if seen[svc] {
				return nil, fmt.Errorf("category %q: duplicate service %q", name, svc)
			}
			seen[svc] = true

			minPrice, err := decimal.NewFromString(rs.Min)
			if err != nil {
				return nil, fmt.Errorf("service %q: invalid min price %q: %w", svc, rs.Min, err)
			}
			maxPrice, err := decimal.NewFromString(rs.Max)
			if err != nil {
				return nil, fmt.Errorf("service %q: invalid max price %q: %w", svc, rs.Max, err)
			}
			if minPrice.IsNegative() {
				return nil, fmt.Errorf("service %q: min price below zero", svc)
			}
			if maxPrice.LessThan(minPrice) {
				return nil, fmt.Errorf("service %q: max price %s below min price %s", svc, maxPrice, minPrice)
			}

			e := Entry{
				Category:    name,
				ServiceName: svc,
				MinPrice:    minPrice,
				MaxPrice:    maxPrice,
				Note:        strings.TrimSpace(rs.Note),
			}
			cat.Entries = append(cat.Entries, e)
			// first category wins when two categories share a service name
			if _, ok := c.byName[svc]; !ok {
				c.byName[svc] = e
			}
		}
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// Lookup returns the entry for serviceName.
func (c *Catalog) Lookup(serviceName string) (Entry, bool) {
	e, ok := c.byName[serviceName]
	return e, ok
}

// Categories returns a copy of the catalog in document order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Entries: append([]Entry(nil), cat.Entries...)}
	}
	return out
}

// Len returns the number of distinct service names.
func (c *Catalog) Len() int {
	return len(c.byName)
}
