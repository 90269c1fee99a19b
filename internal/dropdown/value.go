package dropdown

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the dynamic type held by a Value.
type Kind int

const (
	KindUndefined Kind = iota // zero Value: nothing supplied
	KindNull
	KindString
	KindNumber
)

// Value is an option identity: a string, a number or null.
// The zero Value is undefined and means "no value supplied".
type Value struct {
	kind Kind
	str  string
	num  float64
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a numeric Value.
func Int(i int) Value { return Number(float64(i)) }

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// Defined reports whether v was supplied at all.
func (v Value) Defined() bool { return v.kind != KindUndefined }

// Equal is strict equality: kinds must match, so Int(1) never equals
// String("1"), and NaN equals nothing.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	default:
		return true
	}
}

// String renders v for display and form submission. Null and undefined
// render as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	default:
		return ""
	}
}

// formatNumber prints the shortest decimal that round-trips, switching to
// exponent form for very large and very small magnitudes.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// 1e-07 -> 1e-7
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
