package errors

import (
	"fmt"
	"strings"
)

// ResourceNotFoundError is returned when the input CSV is missing or unreadable
type ResourceNotFoundError struct {
	Path string
	Err  error // underlying OS error
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s: %v", e.Path, e.Err)
}

func (e *ResourceNotFoundError) Unwrap() error {
	return e.Err
}

// MalformedDateError reports a date cell that does not match the expected layout.
// The loader fails the whole load on the first one.
type MalformedDateError struct {
	Table    string
	Column   string
	Value    string
	Layout   string
	RowIndex int // 0-based data row (header excluded)
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date in %s.%s at row %d: %q does not match %q",
		e.Table, e.Column, e.RowIndex, e.Value, e.Layout)
}

// MissingColumnError is returned when the CSV header lacks a required column
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table %s: required column %q not found in header", e.Table, e.Column)
}

// ConstraintError represents a violation of a dataset constraint
// (unique key, type mismatch, column count)
type ConstraintError struct {
	Table      string      // table name
	Column     string      // column name (empty if table-level constraint)
	Value      interface{} // offending value (may be nil)
	Constraint string      // "unique", "type_mismatch", "column_count"
	Reason     string      // human-readable explanation (optional)
	RowIndex   int         // row number (0-based) where violation occurred (-1 if unknown)
	Rows       []int       // for unique violations: all conflicting row positions
}

func (e *ConstraintError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("constraint violation in %s.%s", e.Table, e.Column))

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	return strings.Join(parts, " - ")
}

func NewUniqueViolation(table, column string, value interface{}, rows []int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "unique",
		Reason:     "duplicate value",
		RowIndex:   -1,
		Rows:       rows,
	}
}

func NewTypeMismatch(table, column string, value interface{}, expectedType string, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "type_mismatch",
		Reason:     fmt.Sprintf("expected type %s", expectedType),
		RowIndex:   rowIndex,
	}
}

func NewColumnCountMismatch(table string, got, want, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Constraint: "column_count",
		Reason:     fmt.Sprintf("expected %d fields, got %d", want, got),
		RowIndex:   rowIndex,
	}
}
