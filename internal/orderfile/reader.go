// Package orderfile reads the external order sheet. It supports CSV with a
// header row, gzip-compressed files, and JSON lines. Parsing applies only
// minimal type coercion; a malformed row yields a ParseError for that row
// without aborting the rest of the file.
package orderfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"

	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/order"
)

// ParseError describes one malformed order row.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Core columns every order sheet must name in its header. Remaining
// columns are carried into the record's detail map untouched.
var coreColumns = []string{
	"order_number", "holiday", "item", "name",
	"quantity", "product_id", "description",
}

// ReadFile opens path and reads all order records from it. The format is
// chosen by extension: .jsonl/.ndjson/.json are JSON lines, everything
// else is CSV; a .gz suffix adds transparent gzip decompression. An
// unreadable source is a hard error; malformed rows are returned
// separately so the caller can report each and continue.
func ReadFile(path string) ([]order.Record, []ParseError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	name := path
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
		name = strings.TrimSuffix(path, ".gz")
	}

	switch filepath.Ext(name) {
	case ".jsonl", ".ndjson", ".json":
		return ReadJSONLines(r)
	default:
		return ReadCSV(r)
	}
}

// ReadCSV reads order records from CSV data with a header row. Unknown
// header columns land in the detail map; missing core columns fail the
// whole read.
func ReadCSV(r io.Reader) ([]order.Record, []ParseError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read header")
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range coreColumns {
		if _, ok := cols[c]; !ok {
			return nil, nil, errors.Errorf("missing required column %q", c)
		}
	}

	var (
		records []order.Record
		rowErrs []ParseError
	)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, ParseError{Line: line, Err: err})
			continue
		}

		rec, err := recordFromRow(cols, row)
		if err != nil {
			rowErrs = append(rowErrs, ParseError{Line: line, Err: err})
			continue
		}
		records = append(records, rec)
	}

	return records, rowErrs, nil
}

func recordFromRow(cols map[string]int, row []string) (order.Record, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	number, err := strconv.Atoi(cell("order_number"))
	if err != nil {
		return order.Record{}, errors.Wrap(err, "parse order_number")
	}
	quantity, err := strconv.Atoi(cell("quantity"))
	if err != nil {
		return order.Record{}, errors.Wrap(err, "parse quantity")
	}
	category, err := catalog.ParseCategory(cell("item"))
	if err != nil {
		return order.Record{}, err
	}

	// Everything outside the core columns is a category-specific detail.
	details := make(order.Details)
	for name, i := range cols {
		if isCoreColumn(name) || i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			details[name] = v
		}
	}

	return order.Record{
		Number:      number,
		Holiday:     catalog.ParseHoliday(cell("holiday")),
		Category:    category,
		ProductID:   cell("product_id"),
		Name:        cell("name"),
		Quantity:    quantity,
		Description: cell("description"),
		Details:     details,
	}, nil
}

func isCoreColumn(name string) bool {
	for _, c := range coreColumns {
		if name == c {
			return true
		}
	}
	return false
}
