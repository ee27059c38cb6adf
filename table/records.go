package table

import (
	"fmt"

	"github.com/spf13/cast"
)

// FromRecords builds a table from string records, one record per row, with
// row index 0..n-1. An empty cell marks a missing value. A column becomes
// numeric when every non-empty cell parses as a number and at least one
// cell is non-empty; otherwise it stays text. Callers that already know
// their column kinds should build columns directly instead.
func FromRecords(header []string, records [][]string) (Table, error) {
	for r, rec := range records {
		if len(rec) != len(header) {
			return Table{}, fmt.Errorf("record %d has %d fields, want %d", r, len(rec), len(header))
		}
	}
	cols := make([]Column, len(header))
	for i, name := range header {
		cells := make([]any, len(records))
		for r, rec := range records {
			if rec[i] == "" {
				continue
			}
			cells[r] = rec[i]
		}
		col, err := inferColumn(name, cells)
		if err != nil {
			return Table{}, err
		}
		cols[i] = col
	}
	return New(nil, cols...)
}

func inferColumn(name string, cells []any) (Column, error) {
	numeric := false
	for _, v := range cells {
		if v == nil {
			continue
		}
		if _, err := cast.ToFloat64E(v); err != nil {
			numeric = false
			break
		}
		numeric = true
	}
	if numeric {
		return NewNumeric(name, cells...)
	}
	return NewText(name, cells...)
}
