package resolver

import (
	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
)

func (r *Resolver) VisitBlockStmt(node *ast.BlockStmt) (none, error) {
	r.beginScope()
	r.resolveStmts(node.Statements)
	r.endScope()
	return none{}, nil
}

func (r *Resolver) VisitBreakStmt(node *ast.BreakStmt) (none, error) {
	if r.loopDepth == 0 {
		r.report(node.Keyword, diag.BreakOutsideLoop)
	}
	return none{}, nil
}

func (r *Resolver) VisitClassStmt(node *ast.ClassStmt) (none, error) {
	enclosing := r.class
	r.class = classPlain
	defer func() { r.class = enclosing }()

	r.declare(node.Name)
	r.define(node.Name)

	if node.Superclass != nil {
		if node.Superclass.Name.Lexeme == node.Name.Lexeme {
			r.report(node.Superclass.Name, diag.SelfInheritance)
		} else {
			r.class = classSub
			r.resolveExpr(node.Superclass)
		}
	}
	if r.class == classSub {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	for _, method := range node.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunction(method, kind)
	}
	r.endScope()

	if r.class == classSub {
		r.endScope()
	}
	return none{}, nil
}

func (r *Resolver) VisitExpressionStmt(node *ast.ExpressionStmt) (none, error) {
	r.resolveExpr(node.Expression)
	return none{}, nil
}

func (r *Resolver) VisitFunctionStmt(node *ast.FunctionStmt) (none, error) {
	r.declare(node.Name)
	r.define(node.Name)
	r.resolveFunction(node, functionPlain)
	return none{}, nil
}

func (r *Resolver) VisitIfStmt(node *ast.IfStmt) (none, error) {
	r.resolveExpr(node.Condition)
	r.resolveStmt(node.ThenBranch)
	r.resolveStmt(node.ElseBranch)
	return none{}, nil
}

func (r *Resolver) VisitPrintStmt(node *ast.PrintStmt) (none, error) {
	r.resolveExpr(node.Expression)
	return none{}, nil
}

func (r *Resolver) VisitReturnStmt(node *ast.ReturnStmt) (none, error) {
	if r.function == functionNone {
		r.report(node.Keyword, diag.ReturnOutsideFunction)
	}
	if node.Value != nil {
		if r.function == functionInitializer {
			r.report(node.Keyword, diag.ReturnValueFromInitializer)
		}
		r.resolveExpr(node.Value)
	}
	return none{}, nil
}

// VisitVarStmt resolves the initializer before the name is declared. A
// same-named use inside it is only valid when it reads a known global.
func (r *Resolver) VisitVarStmt(node *ast.VarStmt) (none, error) {
	if node.Initializer != nil {
		r.initializing = append(r.initializing, node.Name.Lexeme)
		r.resolveExpr(node.Initializer)
		r.initializing = r.initializing[:len(r.initializing)-1]
	}
	r.declare(node.Name)
	r.define(node.Name)
	return none{}, nil
}

func (r *Resolver) VisitWhileStmt(node *ast.WhileStmt) (none, error) {
	r.resolveExpr(node.Condition)
	r.loopDepth++
	r.resolveStmt(node.Body)
	r.loopDepth--
	return none{}, nil
}
