package predicate

import (
	"fmt"
	"strings"

	"github.com/leengari/phonequery/internal/domain/data"
)

type matchKind int

const (
	matchContains matchKind = iota
	matchPrefix
)

// MatchOption configures a text match
type MatchOption func(*textMatch)

// IgnoreCase makes a text match case-insensitive
func IgnoreCase() MatchOption {
	return func(m *textMatch) {
		m.ignoreCase = true
	}
}

// textMatch tests a TEXT column against a pattern.
// NULL and non-string cells never match.
type textMatch struct {
	column     string
	pattern    string
	kind       matchKind
	ignoreCase bool
}

func (m *textMatch) Eval(row data.Row, _ Params) bool {
	val, ok := row.Text(m.column)
	if !ok {
		return false
	}

	pattern := m.pattern
	if m.ignoreCase {
		val = strings.ToLower(val)
		pattern = strings.ToLower(pattern)
	}

	if m.kind == matchPrefix {
		return strings.HasPrefix(val, pattern)
	}
	return strings.Contains(val, pattern)
}

func (m *textMatch) String() string {
	fn := "contains"
	if m.kind == matchPrefix {
		fn = "startswith"
	}
	if m.ignoreCase {
		return fmt.Sprintf("%s.%s(%q, ignore_case)", m.column, fn, m.pattern)
	}
	return fmt.Sprintf("%s.%s(%q)", m.column, fn, m.pattern)
}

// Contains matches rows whose column contains substr (like SQL LIKE '%substr%')
func Contains(column, substr string, opts ...MatchOption) Expr {
	m := &textMatch{column: column, pattern: substr, kind: matchContains}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// HasPrefix matches rows whose column starts with prefix (like SQL LIKE 'prefix%')
func HasPrefix(column, prefix string, opts ...MatchOption) Expr {
	m := &textMatch{column: column, pattern: prefix, kind: matchPrefix}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
