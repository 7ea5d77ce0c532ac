package predicate

import (
	"strings"

	"github.com/leengari/phonequery/internal/domain/data"
	"github.com/leengari/phonequery/internal/util/types"
)

// comparison is "left op right".
// A NULL operand makes every operator false except "!=", which holds:
// a missing value is never equal to anything.
type comparison struct {
	left     Operand
	operator string
	right    Operand
}

func (c *comparison) Eval(row data.Row, params Params) bool {
	left, okL := c.left.Resolve(row, params)
	right, okR := c.right.Resolve(row, params)
	if !okL || !okR {
		return c.operator == types.OpNe
	}
	return types.CompareValues(left, c.operator, right)
}

func (c *comparison) String() string {
	op := c.operator
	if op == types.OpEq {
		op = "=="
	}
	return c.left.String() + " " + op + " " + c.right.String()
}

// Compare builds a comparison between two operands
func Compare(left Operand, operator string, right Operand) Expr {
	return &comparison{left: left, operator: operator, right: right}
}

// Eq matches rows where column equals value (case-sensitive for strings)
func Eq(column string, value Operand) Expr {
	return Compare(Col(column), types.OpEq, value)
}

// Ne matches rows where column differs from value
func Ne(column string, value Operand) Expr {
	return Compare(Col(column), types.OpNe, value)
}

// Gt matches rows where column is strictly greater than value
func Gt(column string, value Operand) Expr {
	return Compare(Col(column), types.OpGt, value)
}

// Ge matches rows where column is greater than or equal to value
func Ge(column string, value Operand) Expr {
	return Compare(Col(column), types.OpGe, value)
}

// Lt matches rows where column is strictly less than value
func Lt(column string, value Operand) Expr {
	return Compare(Col(column), types.OpLt, value)
}

// Le matches rows where column is less than or equal to value
func Le(column string, value Operand) Expr {
	return Compare(Col(column), types.OpLe, value)
}

type logical struct {
	operator string // "AND" or "OR"
	exprs    []Expr
}

func (l *logical) Eval(row data.Row, params Params) bool {
	if l.operator == "AND" {
		for _, e := range l.exprs {
			if !e.Eval(row, params) {
				return false
			}
		}
		return true
	}

	for _, e := range l.exprs {
		if e.Eval(row, params) {
			return true
		}
	}
	return false
}

func (l *logical) String() string {
	if len(l.exprs) == 0 {
		if l.operator == "AND" {
			return "TRUE"
		}
		return "FALSE"
	}

	parts := make([]string, len(l.exprs))
	for i, e := range l.exprs {
		s := e.String()
		if child, ok := e.(*logical); ok && child.operator != l.operator && len(child.exprs) > 1 {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, " "+l.operator+" ")
}

// And matches rows satisfying every expression; evaluation short-circuits left to right.
// And() with no arguments matches every row.
func And(exprs ...Expr) Expr {
	return &logical{operator: "AND", exprs: exprs}
}

// Or matches rows satisfying at least one expression.
// Or() with no arguments matches no row.
func Or(exprs ...Expr) Expr {
	return &logical{operator: "OR", exprs: exprs}
}

type not struct {
	expr Expr
}

func (n *not) Eval(row data.Row, params Params) bool {
	return !n.expr.Eval(row, params)
}

func (n *not) String() string {
	return "NOT (" + n.expr.String() + ")"
}

// Not negates an expression
func Not(expr Expr) Expr {
	return &not{expr: expr}
}
