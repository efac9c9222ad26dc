package interpreter

import (
	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/runtime"
)

// frame evaluates nodes against one environment.
type frame struct {
	interp *Interpreter
	env    *runtime.Environment
}

func (i *Interpreter) evaluate(node ast.Expr, env *runtime.Environment) (runtime.Value, error) {
	if node == nil {
		return runtime.NilValue{}, nil
	}
	return ast.AcceptExpr[runtime.Value](node, frame{interp: i, env: env})
}

func (i *Interpreter) execute(node ast.Stmt, env *runtime.Environment) (completion, error) {
	if node == nil {
		return normalCompletion, nil
	}
	return ast.AcceptStmt[completion](node, frame{interp: i, env: env})
}

// executeBlock runs stmts in env and stops at the first non-normal
// completion.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *runtime.Environment) (completion, error) {
	for _, stmt := range stmts {
		result, err := i.execute(stmt, env)
		if err != nil {
			return completion{}, err
		}
		if result.kind != completeNormal {
			return result, nil
		}
	}
	return normalCompletion, nil
}
