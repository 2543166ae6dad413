// Package factory materializes concrete holiday product variants from order
// detail fields. One factory exists per holiday; each produces exactly one
// variant subtype per product category.
package factory

import (
	"fmt"

	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/order"
)

// Factory produces one themed variant per product category from the named
// detail fields of an order. Only fields relevant to the holiday and
// category are consulted; missing optional fields default to zero values,
// and domain-constrained fields are rejected when out of domain.
type Factory interface {
	CreateToy(d order.Details) (catalog.Product, error)
	CreateStuffedAnimal(d order.Details) (catalog.Product, error)
	CreateCandy(d order.Details) (catalog.Product, error)
}

// ResolutionError indicates the holiday key maps to no known factory.
type ResolutionError struct {
	Holiday catalog.Holiday
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unknown holiday %q", string(e.Holiday))
}

// withDefault returns the order-supplied value for key when present,
// otherwise the factory's hard-coded default.
func withDefault(d order.Details, key, def string) string {
	if v, ok := d.Lookup(key); ok {
		return v
	}
	return def
}

// require returns the value for key or a ValidationError when absent.
func require(d order.Details, key string) (string, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return "", &catalog.ValidationError{Field: key, Reason: "required field is missing"}
	}
	return v, nil
}
