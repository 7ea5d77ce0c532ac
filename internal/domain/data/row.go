package data

import (
	"time"
)

// Row represents a single record of the dataset
// Key = column name, Value = typed cell value (int64, float64, string, time.Time)
// A NULL cell is represented by an absent key.
type Row map[string]interface{}

// Copy creates a shallow copy of the row to prevent mutation
func (r Row) Copy() Row {
	copy := make(Row, len(r))
	for k, v := range r {
		copy[k] = v
	}
	return copy
}

// Get returns the raw value for a column and whether it is present (non-NULL)
func (r Row) Get(column string) (interface{}, bool) {
	val, ok := r[column]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

// Text returns the value of a TEXT column.
// ok is false for NULL cells and for non-string values.
func (r Row) Text(column string) (string, bool) {
	val, ok := r.Get(column)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// Float returns the value of a numeric column as float64
func (r Row) Float(column string) (float64, bool) {
	val, ok := r.Get(column)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Time returns the value of a DATETIME column
func (r Row) Time(column string) (time.Time, bool) {
	val, ok := r.Get(column)
	if !ok {
		return time.Time{}, false
	}
	t, ok := val.(time.Time)
	return t, ok
}
