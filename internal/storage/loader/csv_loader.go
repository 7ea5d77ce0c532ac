package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/leengari/phonequery/internal/domain/data"
	"github.com/leengari/phonequery/internal/domain/errors"
	"github.com/leengari/phonequery/internal/domain/schema"
	"github.com/leengari/phonequery/internal/query/indexing"
)

// DateLayout is the textual form of the date column (DD/MM/YY HH:MM, 24-hour clock)
const DateLayout = "02/01/06 15:04"

// DefaultKeyColumn names the first column when the CSV header leaves it blank
const DefaultKeyColumn = "index"

// RequiredColumns must be present in the header besides the key column
var RequiredColumns = []string{"date", "duration", "item", "month", "network", "network_type"}

// nullTokens are the cell values read as NULL in every column, matched exactly
// (no trimming, case-sensitive). Same set as pandas.read_csv's default na_values.
var nullTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsNullToken reports whether a raw CSV cell stands for a missing value
func IsNullToken(cell string) bool {
	return nullTokens[cell]
}

// columnTypes maps known columns to their types; anything else is TEXT
var columnTypes = map[string]schema.ColumnType{
	"date":     schema.ColumnTypeDateTime,
	"duration": schema.ColumnTypeFloat,
}

// LoadTable reads a phone usage CSV file into an in-memory table.
// The first column is the row key. Every non-NULL date cell is parsed with
// DateLayout; the first malformed one fails the whole load.
func LoadTable(path string, logger *slog.Logger) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.ResourceNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	table, err := ReadTable(f, name)
	if err != nil {
		if _, ok := err.(*readError); ok {
			return nil, &errors.ResourceNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	table.Path = path

	if err := indexing.BuildIndexes(table); err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", path, err)
	}

	logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Schema.Columns)),
	)

	return table, nil
}

// readError marks I/O failures while reading the stream, as opposed to bad content
type readError struct {
	err error
}

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

// ReadTable parses CSV content from r into a table called name
func ReadTable(r io.Reader, name string) (*schema.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &errors.MissingColumnError{Table: name, Column: DefaultKeyColumn}
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}

	tableSchema, err := buildSchema(name, header)
	if err != nil {
		return nil, err
	}

	rows := []data.Row{}
	for rowIndex := 0; ; rowIndex++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}

		if len(record) != len(tableSchema.Columns) {
			return nil, errors.NewColumnCountMismatch(name, len(record), len(tableSchema.Columns), rowIndex)
		}

		row, err := parseRow(tableSchema, record, rowIndex)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return &schema.Table{
		Name:    name,
		Schema:  tableSchema,
		Rows:    rows,
		Indexes: make(map[string]*data.Index),
	}, nil
}

func wrapCSVError(err error) error {
	if _, ok := err.(*csv.ParseError); ok {
		return fmt.Errorf("invalid csv: %w", err)
	}
	return &readError{err: err}
}

func buildSchema(name string, header []string) (*schema.TableSchema, error) {
	s := &schema.TableSchema{TableName: name}

	for i, raw := range header {
		colName := strings.TrimSpace(raw)
		if i == 0 {
			// strip a UTF-8 BOM left by spreadsheet exports
			colName = strings.TrimPrefix(colName, "\ufeff")
			if colName == "" {
				colName = DefaultKeyColumn
			}
			s.Columns = append(s.Columns, schema.Column{
				Name:    colName,
				Type:    schema.ColumnTypeInt,
				Key:     true,
				NotNull: true,
			})
			continue
		}

		colType, ok := columnTypes[colName]
		if !ok {
			colType = schema.ColumnTypeText
		}
		s.Columns = append(s.Columns, schema.Column{Name: colName, Type: colType})
	}

	for _, required := range RequiredColumns {
		if _, ok := s.GetColumn(required); !ok {
			return nil, &errors.MissingColumnError{Table: name, Column: required}
		}
	}

	return s, nil
}

// parseRow converts one CSV record to a typed row; NULL tokens become absent keys.
// TEXT cells are stored verbatim; surrounding spaces are only ignored when parsing
// numbers and dates.
func parseRow(s *schema.TableSchema, record []string, rowIndex int) (data.Row, error) {
	row := make(data.Row, len(record))

	for i, col := range s.Columns {
		cell := record[i]
		if IsNullToken(cell) {
			if col.NotNull {
				return nil, &errors.ConstraintError{
					Table:      s.TableName,
					Column:     col.Name,
					Constraint: "not_null",
					Reason:     "missing required value",
					RowIndex:   rowIndex,
				}
			}
			continue
		}

		val, err := parseCell(s.TableName, col, cell, rowIndex)
		if err != nil {
			return nil, err
		}
		if f, ok := val.(float64); ok && math.IsNaN(f) {
			continue
		}
		row[col.Name] = val
	}

	return row, nil
}

func parseCell(table string, col schema.Column, raw string, rowIndex int) (interface{}, error) {
	cell := strings.TrimSpace(raw)

	switch col.Type {
	case schema.ColumnTypeInt:
		// base 10 only: "010" is ten, not an octal literal
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return nil, errors.NewTypeMismatch(table, col.Name, cell, string(col.Type), rowIndex)
		}
		return v, nil

	case schema.ColumnTypeFloat:
		v, err := cast.ToFloat64E(cell)
		if err != nil {
			return nil, errors.NewTypeMismatch(table, col.Name, cell, string(col.Type), rowIndex)
		}
		return v, nil

	case schema.ColumnTypeDateTime:
		v, err := time.Parse(DateLayout, cell)
		if err != nil {
			return nil, &errors.MalformedDateError{
				Table:    table,
				Column:   col.Name,
				Value:    cell,
				Layout:   DateLayout,
				RowIndex: rowIndex,
			}
		}
		return v, nil
	}

	return raw, nil
}
