package indexing

import (
	"log/slog"

	"github.com/leengari/phonequery/internal/domain/data"
	"github.com/leengari/phonequery/internal/domain/errors"
	"github.com/leengari/phonequery/internal/domain/schema"
)

// BuildIndexes builds the unique index on the table's key column.
// Returns a ConstraintError when a key is missing, non-integer or duplicated.
func BuildIndexes(table *schema.Table) error {
	table.Indexes = make(map[string]*data.Index)

	keyCol := table.Schema.GetKeyColumn()
	if keyCol == nil {
		return nil
	}

	idx := &data.Index{
		Column: keyCol.Name,
		Data:   make(map[interface{}][]int),
		Unique: true,
	}

	for rowPos, row := range table.Rows {
		val, ok := row.Get(keyCol.Name)
		if !ok {
			return &errors.ConstraintError{
				Table:      table.Name,
				Column:     keyCol.Name,
				Constraint: "not_null",
				Reason:     "missing row key",
				RowIndex:   rowPos,
			}
		}

		key, ok := val.(int64)
		if !ok {
			return errors.NewTypeMismatch(table.Name, keyCol.Name, val, string(schema.ColumnTypeInt), rowPos)
		}

		idx.Data[key] = append(idx.Data[key], rowPos)
		if len(idx.Data[key]) > 1 {
			return errors.NewUniqueViolation(table.Name, keyCol.Name, key, idx.Data[key])
		}
	}

	table.Indexes[keyCol.Name] = idx

	slog.Debug("index built",
		slog.String("table", table.Name),
		slog.String("column", keyCol.Name),
		slog.Int("unique_values", len(idx.Data)))

	return nil
}
