package orderfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/order"
)

// ReadJSONLines reads order records from JSON lines data: one order object
// per line, keyed by the same column names as the CSV sheet.
func ReadJSONLines(r io.Reader) ([]order.Record, []ParseError, error) {
	var (
		records []order.Record
		rowErrs []ParseError
	)

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		rec, err := decodeRecord([]byte(raw))
		if err != nil {
			rowErrs = append(rowErrs, ParseError{Line: line, Err: err})
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "scan order lines")
	}

	return records, rowErrs, nil
}

func decodeRecord(raw []byte) (order.Record, error) {
	var (
		rec     order.Record
		rawItem string
	)
	rec.Details = make(order.Details)

	d := jx.DecodeBytes(raw)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "order_number":
			n, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "parse order_number")
			}
			rec.Number = n
		case "quantity":
			n, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "parse quantity")
			}
			rec.Quantity = n
		case "holiday":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "parse holiday")
			}
			rec.Holiday = catalog.ParseHoliday(s)
		case "item":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "parse item")
			}
			rawItem = s
		case "product_id":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "parse product_id")
			}
			rec.ProductID = s
		case "name":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "parse name")
			}
			rec.Name = s
		case "description":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "parse description")
			}
			rec.Description = s
		default:
			v, err := decodeScalar(d)
			if err != nil {
				return errors.Wrapf(err, "parse %s", key)
			}
			if v != "" {
				rec.Details[key] = v
			}
		}
		return nil
	}); err != nil {
		return order.Record{}, err
	}

	category, err := catalog.ParseCategory(rawItem)
	if err != nil {
		return order.Record{}, err
	}
	rec.Category = category

	return rec, nil
}

// decodeScalar reads one detail value as its string form, since the detail
// map is untyped by design.
func decodeScalar(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}
		return n.String(), nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case jx.Null:
		return "", d.Null()
	default:
		raw, err := d.Raw()
		if err != nil {
			return "", err
		}
		return raw.String(), nil
	}
}
