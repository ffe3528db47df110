// value.go — the runtime value model: a closed tagged union over numbers,
// booleans, and null. Every consumer (arithmetic, truthiness, equality,
// stringification) switches exhaustively on the tag.
package brio

import (
	"math"
	"strconv"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNull ValueTag = iota // null (no payload)
	VTBool                 // bool
	VTNum                  // float64
)

// Value is the universal runtime carrier. Tag determines which Go type
// Data holds: nil for VTNull, bool for VTBool, float64 for VTNum.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Null is the singleton null Value.
var Null = Value{Tag: VTNull}

// Primitive constructors.
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }

// Truthy maps a value to the boolean used by if/while conditions:
// null is false, a boolean is itself, and everything else — including
// the number zero — is true.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNull:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// Equal reports value equality without coercion. Null equals only null;
// values of different tags are never equal.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	switch v.Tag {
	case VTNull:
		return true
	case VTBool:
		return v.Data.(bool) == o.Data.(bool)
	case VTNum:
		return v.Data.(float64) == o.Data.(float64)
	default:
		return false
	}
}

// String renders the value in its printed form: integral numbers without
// a fractional part ("5", not "5.0"), booleans as true/false, null as null.
func (v Value) String() string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTNum:
		f := v.Data.(float64)
		if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return "<unknown>"
	}
}
