package runtime

import (
	"math"
	"strconv"
)

// IsTruthy reports Lox truthiness: only nil and false are falsy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case nil, NilValue:
		return false
	case BoolValue:
		return val.Val
	default:
		return true
	}
}

// Equal compares values: scalars by value, everything else by identity.
// Values of different kinds are never equal.
func Equal(a, b Value) bool {
	if a == nil {
		a = NilValue{}
	}
	if b == nil {
		b = NilValue{}
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return a == b
}

// Stringify renders a value the way print shows it.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil, NilValue:
		return "nil"
	case BoolValue:
		return strconv.FormatBool(val.Val)
	case NumberValue:
		return FormatNumber(val.Val)
	case StringValue:
		return val.Val
	case *FunctionValue:
		return "<fn " + val.Name() + ">"
	case *NativeFunctionValue:
		return "<native fn>"
	case *ClassValue:
		return val.Name
	case *InstanceValue:
		return val.Class.Name + " instance"
	default:
		return "<" + v.Kind().String() + ">"
	}
}

// FormatNumber prints integral values without a fractional part.
func FormatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
