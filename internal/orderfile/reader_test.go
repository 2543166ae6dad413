package orderfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pgzip "github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftworks/storefront/internal/catalog"
)

const sampleCSV = `order_number,holiday,item,name,quantity,product_id,description,has_glow,spider_type,stuffing,size,fabric,colour
1,Christmas,Stuffed Animal,Reindeer,3,202,A cuddly reindeer,true,,Wool,Medium,Cotton,
2,Halloween,Toy,RC Spider,2,101,A jumping spider,true,Tarantula,,,,
`

func TestReadCSV(t *testing.T) {
	records, rowErrs, err := ReadCSV(strings.NewReader(sampleCSV))

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, 1, r.Number)
	assert.Equal(t, catalog.Christmas, r.Holiday)
	assert.Equal(t, catalog.CategoryStuffedAnimal, r.Category)
	assert.Equal(t, "Reindeer", r.Name)
	assert.Equal(t, 3, r.Quantity)
	assert.Equal(t, "202", r.ProductID)

	// Detail columns are carried into the detail map; empty cells are not.
	assert.Equal(t, "Wool", r.Details["stuffing"])
	assert.Equal(t, "true", r.Details["has_glow"])
	_, hasSpider := r.Details["spider_type"]
	assert.False(t, hasSpider)

	assert.Equal(t, "Tarantula", records[1].Details["spider_type"])
}

func TestReadCSV_MissingCoreColumn(t *testing.T) {
	_, _, err := ReadCSV(strings.NewReader("order_number,holiday,item\n1,christmas,toy\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestReadCSV_BadRowDoesNotAbort(t *testing.T) {
	csv := `order_number,holiday,item,name,quantity,product_id,description
not-a-number,christmas,candy,Candy Canes,2,203,Striped candy
2,christmas,gadget,Widget,1,900,Unknown category
3,easter,candy,Creme Eggs,4,111,Creme Eggs Candy
`
	records, rowErrs, err := ReadCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, rowErrs, 2)
	assert.Equal(t, 2, rowErrs[0].Line)
	assert.Equal(t, 3, rowErrs[1].Line)

	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Number)
}

func TestReadJSONLines(t *testing.T) {
	input := `{"order_number":5,"holiday":"Easter","item":"candy","name":"Creme Eggs","quantity":4,"product_id":"111","description":"Creme Eggs Candy","pack_size":6,"has_nuts":true}

{"order_number":"oops"}
{"order_number":6,"holiday":"christmas","item":"toy","name":"Santa's Workshop","quantity":1,"product_id":"201","description":"Workshop","num_rooms":4}
`
	records, rowErrs, err := ReadJSONLines(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rowErrs, 1)
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, 5, r.Number)
	assert.Equal(t, catalog.Easter, r.Holiday)
	assert.Equal(t, catalog.CategoryCandy, r.Category)
	// Scalar details are coerced to their string form.
	assert.Equal(t, "6", r.Details["pack_size"])
	assert.Equal(t, "true", r.Details["has_nuts"])

	assert.Equal(t, "4", records[1].Details["num_rooms"])
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	records, rowErrs, err := ReadFile(path)

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Len(t, records, 2)
}

func TestReadFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	records, rowErrs, err := ReadFile(path)

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Len(t, records, 2)
}

func TestReadFile_Missing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
