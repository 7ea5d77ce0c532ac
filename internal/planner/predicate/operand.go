package predicate

import (
	"fmt"
	"time"

	"github.com/leengari/phonequery/internal/domain/data"
)

// Operand is one side of a comparison.
// Resolve returns false when the value is NULL (missing column or unbound parameter).
type Operand interface {
	Resolve(row data.Row, params Params) (interface{}, bool)
	String() string
}

// Col references a column of the row being evaluated
func Col(name string) Operand {
	return columnRef(name)
}

// Lit is a constant value
func Lit(value interface{}) Operand {
	return literal{value: value}
}

// Param references a value looked up in Params at evaluation time
func Param(name string) Operand {
	return paramRef(name)
}

type columnRef string

func (c columnRef) Resolve(row data.Row, _ Params) (interface{}, bool) {
	return row.Get(string(c))
}

func (c columnRef) String() string {
	return string(c)
}

type literal struct {
	value interface{}
}

func (l literal) Resolve(_ data.Row, _ Params) (interface{}, bool) {
	return l.value, l.value != nil
}

func (l literal) String() string {
	return formatValue(l.value)
}

type paramRef string

func (p paramRef) Resolve(_ data.Row, params Params) (interface{}, bool) {
	val, ok := params[string(p)]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

func (p paramRef) String() string {
	return "@" + string(p)
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return fmt.Sprintf("%q", val)
	case time.Time:
		return fmt.Sprintf("%q", val.Format(time.DateTime))
	default:
		return fmt.Sprintf("%v", val)
	}
}
