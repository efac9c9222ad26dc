package interpreter

import (
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/runtime"
	"github.com/lpahlavi/jlox/pkg/token"
)

func binaryOperation(op token.Token, left, right runtime.Value) (runtime.Value, error) {
	switch op.Kind {
	case token.EqualEqual:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case token.BangEqual:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	case token.Plus:
		return addValues(op, left, right)
	}

	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return nil, runtimeError(diag.OperandsMustBeNumbers, op, "")
	}
	switch op.Kind {
	case token.Minus:
		return runtime.NumberValue{Val: l.Val - r.Val}, nil
	case token.Star:
		return runtime.NumberValue{Val: l.Val * r.Val}, nil
	case token.Slash:
		if r.Val == 0 {
			return nil, runtimeError(diag.DivisionByZero, op, "")
		}
		return runtime.NumberValue{Val: l.Val / r.Val}, nil
	case token.Greater:
		return runtime.BoolValue{Val: l.Val > r.Val}, nil
	case token.GreaterEqual:
		return runtime.BoolValue{Val: l.Val >= r.Val}, nil
	case token.Less:
		return runtime.BoolValue{Val: l.Val < r.Val}, nil
	case token.LessEqual:
		return runtime.BoolValue{Val: l.Val <= r.Val}, nil
	default:
		return nil, runtimeError(diag.InternalFailure, op, "unknown binary operator %s", op.Lexeme)
	}
}

// addValues adds numbers, or concatenates when either side is a string.
func addValues(op token.Token, left, right runtime.Value) (runtime.Value, error) {
	if l, ok := left.(runtime.NumberValue); ok {
		if r, ok := right.(runtime.NumberValue); ok {
			return runtime.NumberValue{Val: l.Val + r.Val}, nil
		}
	}
	_, lstr := left.(runtime.StringValue)
	_, rstr := right.(runtime.StringValue)
	if lstr || rstr {
		return runtime.StringValue{Val: runtime.Stringify(left) + runtime.Stringify(right)}, nil
	}
	return nil, runtimeError(diag.InvalidPlusOperands, op, "")
}
