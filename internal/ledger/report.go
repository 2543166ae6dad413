package ledger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// reportTimeFormat is the date stamp written under the report header.
const reportTimeFormat = "02-01-2006 15:04"

// WriteReport writes the daily transaction report: a header line, a date
// stamp, and one line per ledger entry.
func (l *Ledger) WriteReport(w io.Writer, now time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "HOLIDAY STOREFRONT - DAILY TRANSACTION REPORT")
	fmt.Fprintln(bw, now.Format(reportTimeFormat))
	for _, e := range l.entries {
		fmt.Fprintf(bw, "Order %d, Item %s, Product Id %s, Name %s, Quantity %d\n",
			e.Order.Number,
			string(e.Order.Category),
			e.Order.ProductID,
			e.Order.Name,
			e.Order.Quantity,
		)
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush report")
	}
	return nil
}

// SaveReport writes the report to path, truncating any existing file.
func (l *Ledger) SaveReport(path string, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create report %s", path)
	}
	defer func() { _ = f.Close() }()

	if err := l.WriteReport(f, now); err != nil {
		return err
	}
	return errors.Wrapf(f.Close(), "close report %s", path)
}

// WriteJSON writes the ledger as one JSON object per line, a
// machine-readable companion to the text report.
func (l *Ledger) WriteJSON(w io.Writer) error {
	var enc jx.Encoder
	for _, e := range l.entries {
		enc.Reset()
		enc.ObjStart()
		enc.FieldStart("id")
		enc.Str(e.ID)
		enc.FieldStart("order_number")
		enc.Int(e.Order.Number)
		enc.FieldStart("holiday")
		enc.Str(string(e.Order.Holiday))
		enc.FieldStart("category")
		enc.Str(string(e.Order.Category))
		enc.FieldStart("product_id")
		enc.Str(e.Order.ProductID)
		enc.FieldStart("name")
		enc.Str(e.Order.Name)
		enc.FieldStart("quantity")
		enc.Int(e.Order.Quantity)
		enc.FieldStart("outcome")
		enc.Str(string(e.Outcome))
		enc.FieldStart("removed")
		enc.Int(e.Removed)
		enc.FieldStart("restocked")
		enc.Int(e.Restocked)
		enc.FieldStart("at")
		enc.Str(e.At.Format(time.RFC3339))
		enc.ObjEnd()

		if _, err := w.Write(enc.Bytes()); err != nil {
			return errors.Wrap(err, "write ledger entry")
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return errors.Wrap(err, "write ledger entry")
		}
	}
	return nil
}

// SaveJSON writes the JSON export to path, truncating any existing file.
func (l *Ledger) SaveJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create ledger export %s", path)
	}
	defer func() { _ = f.Close() }()

	if err := l.WriteJSON(f); err != nil {
		return err
	}
	return errors.Wrapf(f.Close(), "close ledger export %s", path)
}
