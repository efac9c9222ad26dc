package interpreter

import (
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/runtime"
	"github.com/lpahlavi/jlox/pkg/token"
)

// call checks arity before anything runs, then dispatches on the callee.
func (i *Interpreter) call(callee runtime.Value, args []runtime.Value, paren token.Token, env *runtime.Environment) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		if err := checkArity(paren, fn.Arity(), len(args)); err != nil {
			return nil, err
		}
		return i.invokeFunction(fn, args, paren)
	case *runtime.NativeFunctionValue:
		if err := checkArity(paren, fn.Arity, len(args)); err != nil {
			return nil, err
		}
		value, err := fn.Impl(&runtime.NativeCallContext{Env: env}, args)
		if err != nil {
			return nil, runtimeError(diag.NativeFailure, paren, "%s: %v", fn.Name, err)
		}
		if value == nil {
			value = runtime.NilValue{}
		}
		return value, nil
	case *runtime.ClassValue:
		if err := checkArity(paren, fn.Arity(), len(args)); err != nil {
			return nil, err
		}
		instance := runtime.NewInstance(fn)
		if init, ok := fn.FindMethod("init"); ok {
			if _, err := i.invokeFunction(init.Bind(instance), args, paren); err != nil {
				return nil, err
			}
		}
		return instance, nil
	default:
		return nil, runtimeError(diag.NotCallable, paren, "")
	}
}

func checkArity(paren token.Token, want, got int) error {
	if want != got {
		return runtimeError(diag.ArityMismatch, paren, "Expected %d arguments but got %d.", want, got)
	}
	return nil
}

// invokeFunction runs the body in a new frame chained to the closure.
func (i *Interpreter) invokeFunction(fn *runtime.FunctionValue, args []runtime.Value, paren token.Token) (runtime.Value, error) {
	if i.depth >= i.maxDepth {
		return nil, runtimeError(diag.StackOverflow, paren, "")
	}
	i.depth++
	caller := i.bindings
	i.bindings = fn.Bindings
	defer func() {
		i.depth--
		i.bindings = caller
	}()

	env := runtime.NewEnvironment(fn.Closure)
	for idx, param := range fn.Declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}
	result, err := i.executeBlock(fn.Declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this")
	}
	if result.kind == completeReturn && result.value != nil {
		return result.value, nil
	}
	return runtime.NilValue{}, nil
}
