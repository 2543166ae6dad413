// Package order defines the order record model consumed by the fulfillment
// engine. Records are created once from a source row and are read-only
// afterwards.
package order

import (
	"strconv"
	"strings"

	"github.com/giftworks/storefront/internal/catalog"
)

// Record is one parsed order row. Details holds the category-specific
// columns keyed by column name; only the subset relevant to the record's
// category is consulted during fulfillment.
type Record struct {
	Number      int
	Holiday     catalog.Holiday
	Category    catalog.Category
	ProductID   string
	Name        string
	Quantity    int
	Description string
	Details     Details
}

// Fields merges the record's own columns (name, product_id, description)
// into a copy of the detail map, so factories see one flat field bag with
// row values taking precedence over factory defaults.
func (r Record) Fields() Details {
	merged := make(Details, len(r.Details)+3)
	for k, v := range r.Details {
		merged[k] = v
	}
	if r.Name != "" {
		merged["name"] = r.Name
	}
	if r.ProductID != "" {
		merged["product_id"] = r.ProductID
	}
	if r.Description != "" {
		merged["description"] = r.Description
	}
	return merged
}

// Details is an open bag of named detail fields. The typed accessors apply
// the minimal coercion the order sheet needs: empty or absent values fall
// back to the zero value, so factories must check presence explicitly for
// required fields via Lookup.
type Details map[string]string

// Lookup returns the raw value and whether the key is present with a
// non-empty value.
func (d Details) Lookup(key string) (string, bool) {
	v, ok := d[key]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// String returns the trimmed value for key, or "" when absent.
func (d Details) String(key string) string {
	v, _ := d.Lookup(key)
	return v
}

// Bool interprets common truthy spellings (true/t/yes/y/1); anything else,
// including absence, is false.
func (d Details) Bool(key string) bool {
	v, ok := d.Lookup(key)
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "true", "t", "yes", "y", "1":
		return true
	default:
		return false
	}
}

// Int parses the value for key, returning 0 when absent or non-numeric.
func (d Details) Int(key string) int {
	v, ok := d.Lookup(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
