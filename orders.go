package tcglabels

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Order column names in a marketplace export.
const (
	ColFirstName  = "FirstName"
	ColLastName   = "LastName"
	ColAddress1   = "Address1"
	ColAddress2   = "Address2"
	ColCity       = "City"
	ColState      = "State"
	ColPostalCode = "PostalCode"
	ColCountry    = "Country"
)

// utf8BOM is prepended to CSV files by some spreadsheet exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Order is one row of the export, keyed by header column name.
// A column the row does not reach is absent from the map.
type Order map[string]string

// Value returns the column's value and whether the row has it.
func (o Order) Value(column string) (string, bool) {
	v, ok := o[column]
	return v, ok
}

// ReadOrders opens path and parses it with ParseOrders.
func ReadOrders(path string) ([]Order, error) {
	f, err := os.Open(path) // #nosec G304 -- order file path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadOrders, err)
	}
	defer f.Close()

	orders, err := ParseOrders(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return orders, nil
}

// ParseOrders reads a comma-delimited export whose first row is the header.
// Rows come back in file order. Short rows leave their trailing columns
// absent; fields beyond the header are ignored. Any parse error fails the
// whole read.
func ParseOrders(r io.Reader) ([]Order, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseOrders, err)
	}

	var orders []Order
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseOrders, err)
		}

		n := min(len(fields), len(header))
		row := make(Order, n)
		for i := range n {
			row[header[i]] = fields[i]
		}
		orders = append(orders, row)
	}

	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}
