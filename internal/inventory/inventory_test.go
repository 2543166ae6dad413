package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftworks/storefront/internal/catalog"
)

func newReindeer(t *testing.T) *catalog.Reindeer {
	t.Helper()
	p, err := catalog.NewReindeer(catalog.StuffedAnimalBase{
		Name:        "Reindeer",
		Description: "A cuddly reindeer",
		ID:          "202",
		Stuffing:    "Wool",
		Size:        "Medium",
		Fabric:      "Cotton",
	}, true)
	require.NoError(t, err)
	return p
}

func newCremeEggs(t *testing.T) *catalog.CremeEggs {
	t.Helper()
	p, err := catalog.NewCremeEggs(catalog.CandyBase{
		Name:        "Creme Eggs",
		Description: "Creme Eggs Candy",
		ID:          "111",
		HasNuts:     true,
		HasLactose:  true,
	}, 6)
	require.NoError(t, err)
	return p
}

func TestAddThenCountRoundTrip(t *testing.T) {
	s := NewStore()
	r := newReindeer(t)

	require.NoError(t, s.Add(catalog.CategoryStuffedAnimal, r, 5))

	assert.Equal(t, 5, s.CountByName(catalog.CategoryStuffedAnimal, "Reindeer"))
	// Counting is idempotent without mutation.
	assert.Equal(t, 5, s.CountByName(catalog.CategoryStuffedAnimal, "Reindeer"))
	assert.Equal(t, 5, s.Len(catalog.CategoryStuffedAnimal))
}

func TestAddNegativeQuantity(t *testing.T) {
	s := NewStore()

	err := s.Add(catalog.CategoryCandy, newCremeEggs(t), -1)
	require.ErrorIs(t, err, ErrNegativeQuantity)
	assert.Equal(t, 0, s.Len(catalog.CategoryCandy))
}

func TestAddZeroQuantityIsNoop(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Add(catalog.CategoryCandy, newCremeEggs(t), 0))
	assert.Equal(t, 0, s.Len(catalog.CategoryCandy))
}

func TestRemoveMatchesByName(t *testing.T) {
	s := NewStore()
	r := newReindeer(t)
	require.NoError(t, s.Add(catalog.CategoryStuffedAnimal, r, 5))

	removed := s.Remove(catalog.CategoryStuffedAnimal, "Reindeer", 3)

	assert.Equal(t, 3, removed)
	assert.Equal(t, 2, s.CountByName(catalog.CategoryStuffedAnimal, "Reindeer"))
}

func TestRemoveUnderSupply(t *testing.T) {
	s := NewStore()
	r := newReindeer(t)
	require.NoError(t, s.Add(catalog.CategoryStuffedAnimal, r, 2))

	// Fewer than requested exist: remove all that exist, never an error.
	removed := s.Remove(catalog.CategoryStuffedAnimal, "Reindeer", 10)

	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, s.CountByName(catalog.CategoryStuffedAnimal, "Reindeer"))
}

func TestRemoveIsCaseSensitive(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(catalog.CategoryStuffedAnimal, newReindeer(t), 2))

	assert.Equal(t, 0, s.Remove(catalog.CategoryStuffedAnimal, "reindeer", 2))
	assert.Equal(t, 2, s.CountByName(catalog.CategoryStuffedAnimal, "Reindeer"))
}

func TestCountByIDSpansCategories(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(catalog.CategoryStuffedAnimal, newReindeer(t), 2))
	require.NoError(t, s.Add(catalog.CategoryCandy, newCremeEggs(t), 3))

	assert.Equal(t, 2, s.CountByID("202"))
	assert.Equal(t, 3, s.CountByID("111"))
	assert.Equal(t, 0, s.CountByID("999"))
}

func TestStockLevelTiers(t *testing.T) {
	cases := []struct {
		count int
		want  StockLevel
	}{
		{11, InStock},
		{7, LowStock},
		{10, LowStock},
		{4, LowStock},
		{3, VeryLowStock},
		{2, VeryLowStock},
		{1, VeryLowStock},
		{0, OutOfStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFor(tc.count), "count=%d", tc.count)
	}

	assert.Equal(t, "in stock", InStock.String())
	assert.Equal(t, "low stock", LowStock.String())
	assert.Equal(t, "very low stock", VeryLowStock.String())
	assert.Equal(t, "out of stock", OutOfStock.String())
}

func TestLevelByID(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(catalog.CategoryCandy, newCremeEggs(t), 2))

	assert.Equal(t, VeryLowStock, s.LevelByID("111"))
	assert.Equal(t, OutOfStock, s.LevelByID("404"))
}
