package interpreter

import (
	"fmt"

	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/runtime"
)

func (f frame) VisitBlockStmt(node *ast.BlockStmt) (completion, error) {
	return f.interp.executeBlock(node.Statements, runtime.NewEnvironment(f.env))
}

func (f frame) VisitBreakStmt(*ast.BreakStmt) (completion, error) {
	return breakCompletion(), nil
}

func (f frame) VisitClassStmt(node *ast.ClassStmt) (completion, error) {
	var superclass *runtime.ClassValue
	if node.Superclass != nil {
		value, err := f.interp.evaluate(node.Superclass, f.env)
		if err != nil {
			return completion{}, err
		}
		class, ok := value.(*runtime.ClassValue)
		if !ok {
			return completion{}, runtimeError(diag.SuperclassMustBeClass, node.Superclass.Name, "")
		}
		superclass = class
	}

	methodEnv := f.env
	if superclass != nil {
		methodEnv = runtime.NewEnvironment(f.env)
		methodEnv.Define("super", superclass)
	}
	methods := make(map[string]*runtime.FunctionValue, len(node.Methods))
	for _, method := range node.Methods {
		methods[method.Name.Lexeme] = &runtime.FunctionValue{
			Declaration:   method,
			Closure:       methodEnv,
			Bindings:      f.interp.bindings,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}
	f.env.Define(node.Name.Lexeme, &runtime.ClassValue{
		Name:       node.Name.Lexeme,
		Superclass: superclass,
		Methods:    methods,
	})
	return normalCompletion, nil
}

func (f frame) VisitExpressionStmt(node *ast.ExpressionStmt) (completion, error) {
	if _, err := f.interp.evaluate(node.Expression, f.env); err != nil {
		return completion{}, err
	}
	return normalCompletion, nil
}

func (f frame) VisitFunctionStmt(node *ast.FunctionStmt) (completion, error) {
	f.env.Define(node.Name.Lexeme, &runtime.FunctionValue{
		Declaration: node,
		Closure:     f.env,
		Bindings:    f.interp.bindings,
	})
	return normalCompletion, nil
}

func (f frame) VisitIfStmt(node *ast.IfStmt) (completion, error) {
	cond, err := f.interp.evaluate(node.Condition, f.env)
	if err != nil {
		return completion{}, err
	}
	if runtime.IsTruthy(cond) {
		return f.interp.execute(node.ThenBranch, f.env)
	}
	return f.interp.execute(node.ElseBranch, f.env)
}

func (f frame) VisitPrintStmt(node *ast.PrintStmt) (completion, error) {
	value, err := f.interp.evaluate(node.Expression, f.env)
	if err != nil {
		return completion{}, err
	}
	if _, err := fmt.Fprintln(f.interp.stdout, runtime.Stringify(value)); err != nil {
		return completion{}, fmt.Errorf("print: %w", err)
	}
	return normalCompletion, nil
}

func (f frame) VisitReturnStmt(node *ast.ReturnStmt) (completion, error) {
	var value runtime.Value = runtime.NilValue{}
	if node.Value != nil {
		v, err := f.interp.evaluate(node.Value, f.env)
		if err != nil {
			return completion{}, err
		}
		value = v
	}
	return returnCompletion(value), nil
}

func (f frame) VisitVarStmt(node *ast.VarStmt) (completion, error) {
	var value runtime.Value = runtime.NilValue{}
	if node.Initializer != nil {
		v, err := f.interp.evaluate(node.Initializer, f.env)
		if err != nil {
			return completion{}, err
		}
		value = v
	}
	f.env.Define(node.Name.Lexeme, value)
	return normalCompletion, nil
}

func (f frame) VisitWhileStmt(node *ast.WhileStmt) (completion, error) {
	for {
		cond, err := f.interp.evaluate(node.Condition, f.env)
		if err != nil {
			return completion{}, err
		}
		if !runtime.IsTruthy(cond) {
			return normalCompletion, nil
		}
		result, err := f.interp.execute(node.Body, f.env)
		if err != nil {
			return completion{}, err
		}
		switch result.kind {
		case completeBreak:
			return normalCompletion, nil
		case completeReturn:
			return result, nil
		}
	}
}
