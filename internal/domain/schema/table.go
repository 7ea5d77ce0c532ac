package schema

import (
	"fmt"

	"github.com/leengari/phonequery/internal/domain/data"
)

// Table is an in-memory dataset: a schema plus its ordered rows.
// Tables are built once by the loader and treated as read-only afterwards;
// query operations return new Tables that share the schema and row values.
type Table struct {
	Name    string
	Path    string // source file the rows were read from
	Schema  *TableSchema
	Rows    []data.Row
	Indexes map[string]*data.Index
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// View returns a table with the same name, schema and source but a different row set.
// Indexes are not carried over since row positions differ.
func (t *Table) View(rows []data.Row) *Table {
	return &Table{
		Name:    t.Name,
		Path:    t.Path,
		Schema:  t.Schema,
		Rows:    rows,
		Indexes: make(map[string]*data.Index),
	}
}

// GetKeyValue returns the row identifier of a row
func (t *Table) GetKeyValue(row data.Row) (int64, error) {
	keyCol := t.Schema.GetKeyColumn()
	if keyCol == nil {
		return 0, fmt.Errorf("table %s has no key column", t.Name)
	}

	val, exists := row[keyCol.Name]
	if !exists {
		return 0, fmt.Errorf("row missing key column %s", keyCol.Name)
	}

	switch v := val.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("key column %s holds %T, want integer", keyCol.Name, val)
	}
}
