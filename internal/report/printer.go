package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/leengari/phonequery/internal/domain/schema"
)

// SeparatorWidth is the number of dashes printed after each scenario
const SeparatorWidth = 50

// PrintTable renders a table as aligned text: a header line with the column
// names followed by one line per row. NULL cells print as NULL.
// An empty table prints an "Empty DataFrame" block with its column list instead.
func PrintTable(w io.Writer, table *schema.Table) error {
	columns := table.Schema.ColumnNames()

	if table.Len() == 0 {
		var rest []string
		if len(columns) > 1 {
			rest = columns[1:]
		}
		_, err := fmt.Fprintf(w, "Empty DataFrame\nColumns: [%s]\nIndex: []\n", strings.Join(rest, ", "))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(columns, "\t"))

	for _, row := range table.Rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			val, ok := row.Get(col)
			if !ok {
				cells[i] = "NULL"
				continue
			}
			cells[i] = FormatValue(val)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// FormatValue renders a single cell
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.DateTime)
	case float64:
		return formatFloat(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatFloat prints the shortest exact form, keeping a ".0" on whole numbers
// so float cells stay distinguishable from integer ones
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// PrintSection prints a labeled table followed by a separator line
func PrintSection(w io.Writer, label string, table *schema.Table) error {
	if _, err := fmt.Fprintln(w, label); err != nil {
		return err
	}
	if err := PrintTable(w, table); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.Repeat("-", SeparatorWidth))
	return err
}

// PrintResourceNotFound prints the diagnostic shown when the dataset file is missing
func PrintResourceNotFound(w io.Writer, path string) {
	fmt.Fprintf(w, "Error: file '%s' was not found.\n", path)
	fmt.Fprintln(w, "Make sure the program runs from the directory that contains it, or adjust the path.")
}
