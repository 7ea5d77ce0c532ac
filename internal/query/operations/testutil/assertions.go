package testutil

import (
	"testing"

	"github.com/leengari/phonequery/internal/domain/schema"
)

// Keys returns the row keys of a table in row order
func Keys(t *testing.T, table *schema.Table) []int64 {
	t.Helper()
	keys := make([]int64, 0, table.Len())
	for i, row := range table.Rows {
		key, err := table.GetKeyValue(row)
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		keys = append(keys, key)
	}
	return keys
}

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertSubsequence checks that every row of subset appears in full, in the same
// relative order, with all columns of the original row
func AssertSubsequence(t *testing.T, subset, full *schema.Table, context string) {
	t.Helper()
	pos := 0
	for i, row := range subset.Rows {
		for pos < len(full.Rows) && !sameRow(full.Rows[pos], row) {
			pos++
		}
		if pos == len(full.Rows) {
			t.Errorf("%s: row %d (%v) is not an in-order row of the source table", context, i, row)
			return
		}
		pos++
	}
}

func sameRow(a, b map[string]interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
