// Package catalog defines the closed set of holiday product shapes sold by
// the storefront: three categories, each with a fixed base field set, and
// one themed variant per (holiday, category) pair.
package catalog

import (
	"fmt"
	"strings"
)

// Holiday selects a themed product family.
type Holiday string

const (
	Halloween Holiday = "halloween"
	Christmas Holiday = "christmas"
	Easter    Holiday = "easter"
)

// ParseHoliday normalizes a raw holiday value. Unknown values are passed
// through lowercased so that factory resolution can report them; use Valid
// to check membership up front.
func ParseHoliday(s string) Holiday {
	return Holiday(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether h is one of the known holidays.
func (h Holiday) Valid() bool {
	switch h {
	case Halloween, Christmas, Easter:
		return true
	default:
		return false
	}
}

// Category enumerates the three top-level product kinds.
type Category string

const (
	CategoryToy           Category = "toy"
	CategoryStuffedAnimal Category = "stuffed_animal"
	CategoryCandy         Category = "candy"
)

// ParseCategory maps a raw item value to a Category. It accepts the
// canonical names plus the spellings used in order sheets.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toy", "toys":
		return CategoryToy, nil
	case "stuffed_animal", "stuffedanimal", "stuffed animal":
		return CategoryStuffedAnimal, nil
	case "candy":
		return CategoryCandy, nil
	default:
		return "", &ValidationError{Field: "item", Value: s, Reason: "unknown product category"}
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryToy, CategoryStuffedAnimal, CategoryCandy:
		return true
	default:
		return false
	}
}

// Product is the cross-category capability set: every concrete variant has
// an identifying name, a product id, and belongs to exactly one category.
// Field storage lives in the concrete variant structs.
type Product interface {
	ProductName() string
	ProductID() string
	ProductCategory() Category
}

// ValidationError indicates a variant could not be constructed because a
// required field was missing or a constrained field was outside its domain.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid field %s=%q: %s", e.Field, e.Value, e.Reason)
}

// missingField is the common case: a required base field was absent.
func missingField(field string) error {
	return &ValidationError{Field: field, Reason: "required field is missing"}
}

// inDomain validates a constrained field against its closed value set,
// case-insensitively. The stored value keeps the canonical spelling.
func inDomain(field, value string, domain []string) (string, error) {
	for _, d := range domain {
		if strings.EqualFold(value, d) {
			return d, nil
		}
	}
	return "", &ValidationError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf("must be one of %s", strings.Join(domain, ", ")),
	}
}
