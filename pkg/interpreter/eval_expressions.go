package interpreter

import (
	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/runtime"
	"github.com/lpahlavi/jlox/pkg/token"
)

func (f frame) VisitAssignExpr(node *ast.AssignExpr) (runtime.Value, error) {
	value, err := f.interp.evaluate(node.Value, f.env)
	if err != nil {
		return nil, err
	}
	if distance, ok := f.interp.bindings[node]; ok {
		err = f.env.AssignAt(distance, node.Name.Lexeme, value)
	} else {
		err = f.interp.global.Assign(node.Name.Lexeme, value)
	}
	if err != nil {
		return nil, undefinedVariable(node.Name)
	}
	return value, nil
}

func (f frame) VisitBinaryExpr(node *ast.BinaryExpr) (runtime.Value, error) {
	left, err := f.interp.evaluate(node.Left, f.env)
	if err != nil {
		return nil, err
	}
	right, err := f.interp.evaluate(node.Right, f.env)
	if err != nil {
		return nil, err
	}
	return binaryOperation(node.Operator, left, right)
}

func (f frame) VisitCallExpr(node *ast.CallExpr) (runtime.Value, error) {
	callee, err := f.interp.evaluate(node.Callee, f.env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		value, err := f.interp.evaluate(arg, f.env)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	return f.interp.call(callee, args, node.Paren, f.env)
}

func (f frame) VisitGetExpr(node *ast.GetExpr) (runtime.Value, error) {
	object, err := f.interp.evaluate(node.Object, f.env)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.InstanceValue)
	if !ok {
		return nil, runtimeError(diag.OnlyInstancesHaveProps, node.Name, "")
	}
	value, ok := instance.Get(node.Name.Lexeme)
	if !ok {
		return nil, runtimeError(diag.UndefinedProperty, node.Name, "Undefined property '%s'.", node.Name.Lexeme)
	}
	return value, nil
}

func (f frame) VisitGroupingExpr(node *ast.GroupingExpr) (runtime.Value, error) {
	return f.interp.evaluate(node.Expression, f.env)
}

func (f frame) VisitLiteralExpr(node *ast.LiteralExpr) (runtime.Value, error) {
	switch v := node.Value.(type) {
	case nil:
		return runtime.NilValue{}, nil
	case bool:
		return runtime.BoolValue{Val: v}, nil
	case float64:
		return runtime.NumberValue{Val: v}, nil
	case string:
		return runtime.StringValue{Val: v}, nil
	default:
		return nil, &RuntimeError{Diagnostic: diag.Newf(diag.InternalFailure, diag.AtPos(node.Pos()), "unsupported literal %T", v)}
	}
}

func (f frame) VisitLogicalExpr(node *ast.LogicalExpr) (runtime.Value, error) {
	left, err := f.interp.evaluate(node.Left, f.env)
	if err != nil {
		return nil, err
	}
	if node.Operator.Kind == token.Or {
		if runtime.IsTruthy(left) {
			return left, nil
		}
	} else if !runtime.IsTruthy(left) {
		return left, nil
	}
	return f.interp.evaluate(node.Right, f.env)
}

func (f frame) VisitSetExpr(node *ast.SetExpr) (runtime.Value, error) {
	object, err := f.interp.evaluate(node.Object, f.env)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.InstanceValue)
	if !ok {
		return nil, runtimeError(diag.OnlyInstancesHaveFields, node.Name, "")
	}
	value, err := f.interp.evaluate(node.Value, f.env)
	if err != nil {
		return nil, err
	}
	instance.Set(node.Name.Lexeme, value)
	return value, nil
}

// VisitSuperExpr dispatches against the superclass captured when the class
// was defined, not the dynamic class of this.
func (f frame) VisitSuperExpr(node *ast.SuperExpr) (runtime.Value, error) {
	distance, ok := f.interp.bindings[node]
	if !ok {
		return nil, undefinedVariable(node.Keyword)
	}
	superValue, err := f.env.GetAt(distance, "super")
	if err != nil {
		return nil, undefinedVariable(node.Keyword)
	}
	thisValue, err := f.env.GetAt(distance-1, "this")
	if err != nil {
		return nil, runtimeError(diag.UndefinedVariable, node.Keyword, "Undefined variable 'this'.")
	}
	superclass, ok := superValue.(*runtime.ClassValue)
	if !ok {
		return nil, runtimeError(diag.SuperclassMustBeClass, node.Keyword, "")
	}
	instance, ok := thisValue.(*runtime.InstanceValue)
	if !ok {
		return nil, runtimeError(diag.OnlyInstancesHaveProps, node.Keyword, "")
	}
	method, ok := superclass.FindMethod(node.Method.Lexeme)
	if !ok {
		return nil, runtimeError(diag.UndefinedProperty, node.Method, "Undefined property '%s'.", node.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

func (f frame) VisitThisExpr(node *ast.ThisExpr) (runtime.Value, error) {
	return f.lookupVariable(node.Keyword, node)
}

func (f frame) VisitUnaryExpr(node *ast.UnaryExpr) (runtime.Value, error) {
	right, err := f.interp.evaluate(node.Right, f.env)
	if err != nil {
		return nil, err
	}
	switch node.Operator.Kind {
	case token.Bang:
		return runtime.BoolValue{Val: !runtime.IsTruthy(right)}, nil
	case token.Minus:
		n, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, runtimeError(diag.OperandMustBeNumber, node.Operator, "")
		}
		return runtime.NumberValue{Val: -n.Val}, nil
	default:
		return nil, runtimeError(diag.InternalFailure, node.Operator, "unknown unary operator %s", node.Operator.Lexeme)
	}
}

func (f frame) VisitVariableExpr(node *ast.VariableExpr) (runtime.Value, error) {
	return f.lookupVariable(node.Name, node)
}

func (f frame) lookupVariable(name token.Token, node ast.Expr) (runtime.Value, error) {
	var (
		value runtime.Value
		err   error
	)
	if distance, ok := f.interp.bindings[node]; ok {
		value, err = f.env.GetAt(distance, name.Lexeme)
	} else {
		value, err = f.interp.global.Get(name.Lexeme)
	}
	if err != nil {
		return nil, undefinedVariable(name)
	}
	return value, nil
}

func undefinedVariable(name token.Token) error {
	return runtimeError(diag.UndefinedVariable, name, "Undefined variable '%s'.", name.Lexeme)
}
