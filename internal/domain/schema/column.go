package schema

type ColumnType string

const (
	ColumnTypeInt      ColumnType = "INT"
	ColumnTypeFloat    ColumnType = "FLOAT"
	ColumnTypeText     ColumnType = "TEXT"
	ColumnTypeDateTime ColumnType = "DATETIME"
)

type Column struct {
	Name    string
	Type    ColumnType
	Key     bool // row identifier, always the first CSV column
	NotNull bool
}

// TableSchema is the ordered column set of a table, fixed at load time
type TableSchema struct {
	TableName string
	Columns   []Column
}

// GetKeyColumn returns the row identifier column, or nil if none is declared
func (s *TableSchema) GetKeyColumn() *Column {
	for i := range s.Columns {
		if s.Columns[i].Key {
			return &s.Columns[i]
		}
	}
	return nil
}

// GetColumn looks up a column by name
func (s *TableSchema) GetColumn(name string) (*Column, bool) {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in schema order
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}
