package cleaning

import (
	"fmt"

	"tabular/table"
)

// MissingColumnError reports a requested column name that does not exist
// in the table. Column identifies the first absent name.
type MissingColumnError struct {
	Column string `json:"column"`
}

// Error implements the error interface
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q does not exist", e.Column)
}

// TypeMismatchError reports a column whose logical type is incompatible
// with the requested operation.
type TypeMismatchError struct {
	Column string     `json:"column"`
	Want   table.Kind `json:"want"`
	Got    table.Kind `json:"got"`
}

// Error implements the error interface
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column %q is %s, want %s", e.Column, e.Got, e.Want)
}

// InvalidFactorError reports a negative IQR fence multiplier. The fence
// is only defined for factors >= 0.
type InvalidFactorError struct {
	Factor float64 `json:"factor"`
}

// Error implements the error interface
func (e *InvalidFactorError) Error() string {
	return fmt.Sprintf("factor must be non-negative, got %g", e.Factor)
}
