package cleaning

import (
	"fmt"
	"log/slog"
	"strings"

	"tabular/table"
)

// DefaultIQRFactor is the classical Tukey fence multiplier.
const DefaultIQRFactor = 1.5

// Cleaner applies cleaning operations to tables. It holds no state between
// calls; every operation receives a table, validates its inputs, and
// returns a new table, leaving the input untouched. A single Cleaner is
// safe for concurrent use.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a cleaner. A nil logger falls back to slog.Default().
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// TrimStrings returns a new table with leading and trailing whitespace
// removed from every value of the named text columns. Missing cells pass
// through unchanged, and columns not named in cols are carried over
// value-identical. Every name must exist and refer to a text column.
func (c *Cleaner) TrimStrings(t table.Table, cols []string) (table.Table, error) {
	if err := requireColumns(t, cols); err != nil {
		return table.Table{}, err
	}
	if err := requireKind(t, cols, table.Text); err != nil {
		return table.Table{}, err
	}

	out := t
	for _, name := range cols {
		col, _ := t.Column(name)
		cells := make([]any, col.Len())
		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				continue
			}
			cells[i] = strings.TrimSpace(col.Text(i))
		}
		trimmed, err := table.NewText(name, cells...)
		if err != nil {
			return table.Table{}, fmt.Errorf("rebuild column %q: %w", name, err)
		}
		out, err = out.WithColumn(trimmed)
		if err != nil {
			return table.Table{}, fmt.Errorf("replace column %q: %w", name, err)
		}
	}

	c.logger.Debug("trimmed string columns", "columns", cols, "rows", t.NumRows())
	return out, nil
}

// DropInvalidRows returns a new table containing only the rows where none
// of the named columns hold a missing value. Index values of kept rows are
// preserved, not renumbered. Every name must exist in the table.
func (c *Cleaner) DropInvalidRows(t table.Table, cols []string) (table.Table, error) {
	if err := requireColumns(t, cols); err != nil {
		return table.Table{}, err
	}

	checked := make([]table.Column, len(cols))
	for i, name := range cols {
		checked[i], _ = t.Column(name)
	}

	keep := make([]int, 0, t.NumRows())
	for r := 0; r < t.NumRows(); r++ {
		complete := true
		for _, col := range checked {
			if col.IsMissing(r) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, r)
		}
	}

	out, err := t.Select(keep)
	if err != nil {
		return table.Table{}, fmt.Errorf("select rows: %w", err)
	}
	c.logger.Debug("dropped invalid rows",
		"columns", cols, "rows_in", t.NumRows(), "rows_out", out.NumRows())
	return out, nil
}

// RemoveOutliersIQR returns a new table retaining exactly the rows whose
// value in the named numeric column lies within the Tukey fences
// [Q1 - factor*IQR, Q3 + factor*IQR], bounds inclusive. Q1 and Q3 are the
// 25th and 75th percentiles of the non-missing values, computed with
// linear interpolation between order statistics. Rows whose cell is
// missing cannot be compared against the bounds and are dropped. The
// factor must be non-negative; DefaultIQRFactor gives the classical fence.
func (c *Cleaner) RemoveOutliersIQR(t table.Table, col string, factor float64) (table.Table, error) {
	if err := requireColumns(t, []string{col}); err != nil {
		return table.Table{}, err
	}
	if err := requireKind(t, []string{col}, table.Numeric); err != nil {
		return table.Table{}, err
	}
	if factor < 0 {
		return table.Table{}, &InvalidFactorError{Factor: factor}
	}

	column, _ := t.Column(col)
	values := sortedNonMissing(column)

	keep := make([]int, 0, t.NumRows())
	if len(values) > 0 {
		q1 := quantile(values, 0.25)
		q3 := quantile(values, 0.75)
		lower, upper := tukeyFences(q1, q3, factor)

		for r := 0; r < t.NumRows(); r++ {
			// NaN fails both comparisons, so missing cells drop out here.
			v := column.Float(r)
			if v >= lower && v <= upper {
				keep = append(keep, r)
			}
		}
	}

	out, err := t.Select(keep)
	if err != nil {
		return table.Table{}, fmt.Errorf("select rows: %w", err)
	}
	c.logger.Debug("removed outliers",
		"column", col, "factor", factor, "rows_in", t.NumRows(), "rows_out", out.NumRows())
	return out, nil
}

// requireColumns fails with a MissingColumnError naming the first absent
// column.
func requireColumns(t table.Table, cols []string) error {
	for _, name := range cols {
		if !t.HasColumn(name) {
			return &MissingColumnError{Column: name}
		}
	}
	return nil
}

// requireKind fails with a TypeMismatchError naming the first column whose
// kind differs from want. Columns must already exist.
func requireKind(t table.Table, cols []string, want table.Kind) error {
	for _, name := range cols {
		col, _ := t.Column(name)
		if col.Kind() != want {
			return &TypeMismatchError{Column: name, Want: want, Got: col.Kind()}
		}
	}
	return nil
}
