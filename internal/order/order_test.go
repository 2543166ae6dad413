package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giftworks/storefront/internal/catalog"
)

func TestDetailsCoercion(t *testing.T) {
	d := Details{
		"speed":    " 9 ",
		"has_glow": "Yes",
		"empty":    "   ",
		"bad_int":  "fast",
	}

	assert.Equal(t, 9, d.Int("speed"))
	assert.True(t, d.Bool("has_glow"))
	assert.False(t, d.Bool("missing"))
	assert.Equal(t, 0, d.Int("bad_int"))
	assert.Equal(t, "", d.String("empty"))

	_, ok := d.Lookup("empty")
	assert.False(t, ok)
	v, ok := d.Lookup("speed")
	assert.True(t, ok)
	assert.Equal(t, "9", v)
}

func TestFieldsMergesRowColumns(t *testing.T) {
	rec := Record{
		Number:      1,
		Holiday:     catalog.Easter,
		Category:    catalog.CategoryCandy,
		ProductID:   "E-900",
		Name:        "Mini Creme Eggs",
		Description: "Smaller eggs",
		Details:     Details{"pack_size": "12"},
	}

	fields := rec.Fields()

	assert.Equal(t, "Mini Creme Eggs", fields.String("name"))
	assert.Equal(t, "E-900", fields.String("product_id"))
	assert.Equal(t, "Smaller eggs", fields.String("description"))
	assert.Equal(t, 12, fields.Int("pack_size"))

	// The record's own detail map is untouched.
	_, ok := rec.Details["name"]
	assert.False(t, ok)
}

func TestFieldsOmitsEmptyRowColumns(t *testing.T) {
	rec := Record{Number: 2, Details: Details{}}

	fields := rec.Fields()

	_, hasName := fields.Lookup("name")
	assert.False(t, hasName)
	_, hasID := fields.Lookup("product_id")
	assert.False(t, hasID)
}
