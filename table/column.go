package table

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// NewText builds a text column from the given cell values. A nil value
// marks a missing cell; every other value must be convertible to a string.
func NewText(name string, values ...any) (Column, error) {
	strs, valid, err := toStrings(name, values)
	if err != nil {
		return Column{}, err
	}
	return Column{name: name, kind: Text, strs: strs, valid: valid}, nil
}

// NewCategorical builds a categorical column from the given cell values.
// A nil value marks a missing cell.
func NewCategorical(name string, values ...any) (Column, error) {
	strs, valid, err := toStrings(name, values)
	if err != nil {
		return Column{}, err
	}
	return Column{name: name, kind: Categorical, strs: strs, valid: valid}, nil
}

// NewNumeric builds a numeric column from the given cell values. A nil
// value or a NaN marks a missing cell; every other value must be
// convertible to a float64. Integers and numeric strings are accepted.
func NewNumeric(name string, values ...any) (Column, error) {
	floats := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			floats[i] = math.NaN()
			continue
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return Column{}, fmt.Errorf("column %q: cell %d: %w", name, i, err)
		}
		floats[i] = f
	}
	return Column{name: name, kind: Numeric, floats: floats}, nil
}

func toStrings(name string, values []any) ([]string, []bool, error) {
	strs := make([]string, len(values))
	valid := make([]bool, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, nil, fmt.Errorf("column %q: cell %d: %w", name, i, err)
		}
		strs[i] = s
		valid[i] = true
	}
	return strs, valid, nil
}

// IsMissing reports whether the cell at position i holds the column's
// missing marker. The check is uniform across kinds.
func (c Column) IsMissing(i int) bool {
	if c.kind == Numeric {
		return math.IsNaN(c.floats[i])
	}
	return !c.valid[i]
}

// Text returns the string cell at position i. It is only meaningful for
// text and categorical columns; missing cells return the empty string.
func (c Column) Text(i int) string {
	if c.kind == Numeric {
		return ""
	}
	return c.strs[i]
}

// Float returns the numeric cell at position i. It is only meaningful for
// numeric columns; missing cells return NaN.
func (c Column) Float(i int) float64 {
	if c.kind != Numeric {
		return math.NaN()
	}
	return c.floats[i]
}

// Value returns the cell at position i as an untyped value: a string for
// text and categorical columns, a float64 for numeric columns, and nil for
// a missing cell of any kind.
func (c Column) Value(i int) any {
	if c.IsMissing(i) {
		return nil
	}
	if c.kind == Numeric {
		return c.floats[i]
	}
	return c.strs[i]
}

// take builds a new column holding the cells at the given positions.
func (c Column) take(positions []int) Column {
	out := Column{name: c.name, kind: c.kind}
	if c.kind == Numeric {
		out.floats = make([]float64, len(positions))
		for i, p := range positions {
			out.floats[i] = c.floats[p]
		}
		return out
	}
	out.strs = make([]string, len(positions))
	out.valid = make([]bool, len(positions))
	for i, p := range positions {
		out.strs[i] = c.strs[p]
		out.valid[i] = c.valid[p]
	}
	return out
}
