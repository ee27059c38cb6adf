// Package table provides the in-memory tabular data structure consumed by
// the cleaning operations: an ordered collection of named, equal-length,
// homogeneously typed columns sharing a row index.
//
// # Data Model
//
// A [Table] holds an ordered sequence of [Column] values. Each column has a
// unique name and a [Kind] (Text, Numeric, or Categorical) and carries its
// own missing-value representation: NaN for numeric columns, an explicit
// validity mask for text and categorical columns. Rows are aligned by a
// positional row index that survives filtering, so callers can trace kept
// rows back to their origin:
//
//	name, _ := table.NewText("name", " Alice ", "Bob", nil)
//	age, _ := table.NewNumeric("age", 25, nil, 35)
//	t, err := table.New(nil, name, age)
//
// # Ownership
//
// Tables are immutable by construction. Every accessor that hands out a
// slice returns a copy, and every transformation ([Table.Select],
// [Table.WithColumn]) builds a fresh Table, so a Table can be shared
// read-only across goroutines without coordination.
package table
