// Package inventory implements the in-memory stock store: three ordered
// collections of materialized products, one per category, with name- and
// id-keyed counting. The store is mutated by a single logical thread of
// control and is not safe for concurrent use.
package inventory

import (
	"github.com/go-faster/errors"

	"github.com/giftworks/storefront/internal/catalog"
)

// ErrNegativeQuantity is returned when Add is called with a negative count.
var ErrNegativeQuantity = errors.New("quantity must not be negative")

// Store holds the storefront's stock. Duplicate entries are expected: an
// item stocked N times appears N times in its category's collection.
type Store struct {
	toys           []catalog.Product
	stuffedAnimals []catalog.Product
	candy          []catalog.Product
}

// NewStore returns an empty inventory store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) shelf(c catalog.Category) *[]catalog.Product {
	switch c {
	case catalog.CategoryToy:
		return &s.toys
	case catalog.CategoryStuffedAnimal:
		return &s.stuffedAnimals
	case catalog.CategoryCandy:
		return &s.candy
	default:
		return nil
	}
}

// Add appends qty copies of p to the collection for c. Quantity zero is a
// no-op; a negative quantity is an error.
func (s *Store) Add(c catalog.Category, p catalog.Product, qty int) error {
	if qty < 0 {
		return errors.Wrapf(ErrNegativeQuantity, "add %d of %s", qty, p.ProductName())
	}
	shelf := s.shelf(c)
	if shelf == nil {
		return errors.Errorf("unsupported product category: %q", string(c))
	}
	for i := 0; i < qty; i++ {
		*shelf = append(*shelf, p)
	}
	return nil
}

// Remove takes up to qty entries whose product name equals name (exact,
// case-sensitive) out of the collection for c, and returns how many were
// actually removed. Under-supply is not an error: the shortfall is the
// caller's signal to restock.
func (s *Store) Remove(c catalog.Category, name string, qty int) int {
	shelf := s.shelf(c)
	if shelf == nil || qty <= 0 {
		return 0
	}
	removed := 0
	kept := (*shelf)[:0]
	for _, p := range *shelf {
		if removed < qty && p.ProductName() == name {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	*shelf = kept
	return removed
}

// CountByName returns how many stored entries in c carry the given product
// name (exact, case-sensitive).
func (s *Store) CountByName(c catalog.Category, name string) int {
	shelf := s.shelf(c)
	if shelf == nil {
		return 0
	}
	n := 0
	for _, p := range *shelf {
		if p.ProductName() == name {
			n++
		}
	}
	return n
}

// CountByID returns the total number of stored entries across all three
// categories whose product id equals id.
func (s *Store) CountByID(id string) int {
	n := 0
	for _, shelf := range [][]catalog.Product{s.toys, s.stuffedAnimals, s.candy} {
		for _, p := range shelf {
			if p.ProductID() == id {
				n++
			}
		}
	}
	return n
}

// Len returns the number of entries stored for c.
func (s *Store) Len(c catalog.Category) int {
	shelf := s.shelf(c)
	if shelf == nil {
		return 0
	}
	return len(*shelf)
}

// LevelByID returns the stock-level tier for the product with the given id,
// counted across all categories.
func (s *Store) LevelByID(id string) StockLevel {
	return LevelFor(s.CountByID(id))
}
