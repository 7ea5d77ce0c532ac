// Package predicate builds row predicates from composable expression values.
//
// Expressions are plain Go values, never strings evaluated at runtime. Values that
// must be supplied late are referenced with Param and resolved from a Params set
// on every evaluation, so the same expression can be filtered with different
// bindings.
package predicate

import (
	"fmt"

	"github.com/leengari/phonequery/internal/domain/data"
)

// PredicateFunc is a function that tests whether a row matches certain criteria
type PredicateFunc func(data.Row) bool

// Params holds late-bound values referenced by Param operands
type Params map[string]interface{}

// Expr is a boolean expression over a single row.
// Eval must be pure: it may not mutate the row or depend on other rows.
type Expr interface {
	Eval(row data.Row, params Params) bool
	String() string
}

// UnboundParamError is returned by Bind when an expression references a
// parameter the Params set does not provide
type UnboundParamError struct {
	Name string
	Expr string
}

func (e *UnboundParamError) Error() string {
	return fmt.Sprintf("parameter @%s is not bound (expression: %s)", e.Name, e.Expr)
}

// Bind turns an expression into a PredicateFunc evaluated against params.
// The params map is read on every call, not copied.
func Bind(expr Expr, params Params) (PredicateFunc, error) {
	for _, name := range RequiredParams(expr) {
		if _, ok := params[name]; !ok {
			return nil, &UnboundParamError{Name: name, Expr: expr.String()}
		}
	}

	return func(row data.Row) bool {
		return expr.Eval(row, params)
	}, nil
}

// MustBind is like Bind but panics on unbound parameters
func MustBind(expr Expr, params Params) PredicateFunc {
	pred, err := Bind(expr, params)
	if err != nil {
		panic(err)
	}
	return pred
}

// RequiredParams lists the parameter names an expression references, in first-use order
func RequiredParams(expr Expr) []string {
	seen := make(map[string]bool)
	var names []string

	add := func(op Operand) {
		if p, ok := op.(paramRef); ok && !seen[string(p)] {
			seen[string(p)] = true
			names = append(names, string(p))
		}
	}

	var walk func(Expr)
	walk = func(e Expr) {
		switch v := e.(type) {
		case *comparison:
			add(v.left)
			add(v.right)
		case *logical:
			for _, child := range v.exprs {
				walk(child)
			}
		case *not:
			walk(v.expr)
		}
	}
	walk(expr)

	return names
}

// Func wraps an arbitrary row function as an Expr
func Func(name string, fn PredicateFunc) Expr {
	return &funcExpr{name: name, fn: fn}
}

type funcExpr struct {
	name string
	fn   PredicateFunc
}

func (f *funcExpr) Eval(row data.Row, _ Params) bool {
	return f.fn(row)
}

func (f *funcExpr) String() string {
	return f.name + "(row)"
}
