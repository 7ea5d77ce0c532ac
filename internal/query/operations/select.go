package operations

import (
	"github.com/leengari/phonequery/internal/domain/data"
	"github.com/leengari/phonequery/internal/domain/schema"
	"github.com/leengari/phonequery/internal/planner/predicate"
)

// SelectAll returns a view over every row of the table
func SelectAll(table *schema.Table) *schema.Table {
	rows := make([]data.Row, len(table.Rows))
	copy(rows, table.Rows)
	return table.View(rows)
}

// SelectWhere returns a view over the rows that match the given predicate.
// Rows keep their original relative order and all of their columns.
// The source table is never modified.
func SelectWhere(table *schema.Table, pred predicate.PredicateFunc) *schema.Table {
	result := make([]data.Row, 0)
	for _, row := range table.Rows {
		if pred(row) {
			result = append(result, row)
		}
	}
	return table.View(result)
}

// Head returns a view over the first n rows (all rows if the table is shorter)
func Head(table *schema.Table, n int) *schema.Table {
	if n < 0 {
		n = 0
	}
	if n > len(table.Rows) {
		n = len(table.Rows)
	}
	rows := make([]data.Row, n)
	copy(rows, table.Rows[:n])
	return table.View(rows)
}

// SelectByKey retrieves a row using the unique key index
// Returns the row and true if found, nil and false otherwise
func SelectByKey(table *schema.Table, key int64) (data.Row, bool) {
	keyCol := table.Schema.GetKeyColumn()
	if keyCol == nil {
		return nil, false
	}

	idx, exists := table.Indexes[keyCol.Name]
	if !exists || !idx.Unique {
		return nil, false
	}

	positions, found := idx.Data[key]
	if !found || len(positions) == 0 {
		return nil, false
	}

	return table.Rows[positions[0]], true
}
