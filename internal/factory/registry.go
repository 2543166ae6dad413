package factory

import (
	"github.com/go-faster/errors"

	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/order"
)

// Registry maps holidays to their factories. It is constructed once at
// process start and passed by reference wherever factory resolution is
// needed; there is no package-level lookup table.
type Registry struct {
	factories map[catalog.Holiday]Factory
}

// NewRegistry builds the registry with one factory per known holiday.
func NewRegistry() *Registry {
	return &Registry{
		factories: map[catalog.Holiday]Factory{
			catalog.Halloween: HalloweenFactory{},
			catalog.Christmas: ChristmasFactory{},
			catalog.Easter:    EasterFactory{},
		},
	}
}

// Lookup resolves the factory for h. An unrecognized holiday yields a
// ResolutionError, never a nil factory.
func (r *Registry) Lookup(h catalog.Holiday) (Factory, error) {
	f, ok := r.factories[h]
	if !ok {
		return nil, &ResolutionError{Holiday: h}
	}
	return f, nil
}

// CreateFor resolves the factory for h and invokes the create operation
// matching c with the given detail fields.
func (r *Registry) CreateFor(h catalog.Holiday, c catalog.Category, d order.Details) (catalog.Product, error) {
	f, err := r.Lookup(h)
	if err != nil {
		return nil, err
	}
	switch c {
	case catalog.CategoryToy:
		return f.CreateToy(d)
	case catalog.CategoryStuffedAnimal:
		return f.CreateStuffedAnimal(d)
	case catalog.CategoryCandy:
		return f.CreateCandy(d)
	default:
		return nil, errors.Errorf("unsupported product category: %q", string(c))
	}
}
