package types

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Comparison operators understood by CompareValues
const (
	OpEq = "="
	OpNe = "!="
	OpLt = "<"
	OpLe = "<="
	OpGt = ">"
	OpGe = ">="
)

// IsNumeric reports whether v holds a Go numeric type
func IsNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// Compare orders two non-NULL values.
// Numbers compare numerically across Go types, strings byte-wise (case-sensitive),
// times chronologically. ok is false when the values have no common ordering;
// NaN has none, so it is neither equal to nor ordered against any number.
func Compare(left, right interface{}) (result int, ok bool) {
	if IsNumeric(left) && IsNumeric(right) {
		l, errL := cast.ToFloat64E(left)
		r, errR := cast.ToFloat64E(right)
		if errL != nil || errR != nil || math.IsNaN(l) || math.IsNaN(r) {
			return 0, false
		}
		switch {
		case l < r:
			return -1, true
		case l > r:
			return 1, true
		}
		return 0, true
	}

	switch l := left.(type) {
	case string:
		r, ok := right.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(l, r), true
	case time.Time:
		r, ok := right.(time.Time)
		if !ok {
			return 0, false
		}
		return l.Compare(r), true
	case bool:
		r, ok := right.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case l == r:
			return 0, true
		case !l:
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

// CompareValues applies a comparison operator to two non-NULL values.
// Values of incompatible types are never equal, so only "!=" holds for them.
func CompareValues(left interface{}, operator string, right interface{}) bool {
	c, ok := Compare(left, right)
	if !ok {
		return operator == OpNe || operator == "<>"
	}

	switch operator {
	case OpEq:
		return c == 0
	case OpNe, "<>":
		return c != 0
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGe:
		return c >= 0
	}
	return false
}
