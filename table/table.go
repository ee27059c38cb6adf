package table

import (
	"fmt"
	"strconv"
)

// Table is an ordered collection of named, equal-length columns sharing a
// row index. The zero value is an empty table.
type Table struct {
	cols   []Column
	index  []int
	byName map[string]int
}

// New builds a table from the given columns. All columns must have the
// same length and unique, non-empty names. index assigns a row identifier
// to each position; a nil index defaults to 0..n-1. Index values survive
// row filtering unchanged, which is what lets callers trace kept rows back
// to the original data.
func New(index []int, cols ...Column) (Table, error) {
	n := 0
	if len(cols) > 0 {
		n = cols[0].Len()
	}
	byName := make(map[string]int, len(cols))
	for i, c := range cols {
		if c.name == "" {
			return Table{}, fmt.Errorf("column %d has no name", i)
		}
		if _, dup := byName[c.name]; dup {
			return Table{}, fmt.Errorf("duplicate column name %q", c.name)
		}
		if c.Len() != n {
			return Table{}, fmt.Errorf("column %q has %d rows, want %d", c.name, c.Len(), n)
		}
		byName[c.name] = i
	}
	if index == nil {
		index = make([]int, n)
		for i := range index {
			index[i] = i
		}
	} else {
		if len(index) != n {
			return Table{}, fmt.Errorf("index has %d entries, want %d", len(index), n)
		}
		index = append([]int(nil), index...)
	}
	return Table{cols: append([]Column(nil), cols...), index: index, byName: byName}, nil
}

// NumRows returns the number of rows.
func (t Table) NumRows() int { return len(t.index) }

// NumCols returns the number of columns.
func (t Table) NumCols() int { return len(t.cols) }

// Names returns the column names in order.
func (t Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Column returns the named column and whether it exists.
func (t Table) Column(name string) (Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, false
	}
	return t.cols[i], true
}

// Columns returns the columns in order.
func (t Table) Columns() []Column {
	return append([]Column(nil), t.cols...)
}

// Index returns the row index values in order.
func (t Table) Index() []int {
	return append([]int(nil), t.index...)
}

// Select builds a new table holding the rows at the given positions, in
// the given order. Index values of the selected rows are preserved, not
// renumbered. Positions must be within [0, NumRows).
func (t Table) Select(positions []int) (Table, error) {
	index := make([]int, len(positions))
	for i, p := range positions {
		if p < 0 || p >= t.NumRows() {
			return Table{}, fmt.Errorf("row position %d out of range [0,%d)", p, t.NumRows())
		}
		index[i] = t.index[p]
	}
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.take(positions)
	}
	return New(index, cols...)
}

// WithColumn builds a new table with the same-named column replaced. The
// replacement must match the table's row count; columns not replaced are
// carried over value-identical.
func (t Table) WithColumn(c Column) (Table, error) {
	i, ok := t.byName[c.name]
	if !ok {
		return Table{}, fmt.Errorf("column %q does not exist", c.name)
	}
	if c.Len() != t.NumRows() {
		return Table{}, fmt.Errorf("column %q has %d rows, want %d", c.name, c.Len(), t.NumRows())
	}
	cols := append([]Column(nil), t.cols...)
	cols[i] = c
	return New(t.Index(), cols...)
}

// Records renders the table as string records: a header row of column
// names followed by one record per row. Numeric cells use the shortest
// representation that round-trips; missing cells render as the empty
// string. The layout mirrors what FromRecords accepts.
func (t Table) Records() [][]string {
	out := make([][]string, 0, t.NumRows()+1)
	out = append(out, t.Names())
	for r := 0; r < t.NumRows(); r++ {
		rec := make([]string, len(t.cols))
		for i, c := range t.cols {
			if c.IsMissing(r) {
				continue
			}
			if c.kind == Numeric {
				rec[i] = strconv.FormatFloat(c.floats[r], 'g', -1, 64)
			} else {
				rec[i] = c.strs[r]
			}
		}
		out = append(out, rec)
	}
	return out
}
