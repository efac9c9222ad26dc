package resolver

import (
	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
)

func (r *Resolver) VisitAssignExpr(node *ast.AssignExpr) (none, error) {
	r.resolveExpr(node.Value)
	r.resolveLocal(node, node.Name.Lexeme)
	return none{}, nil
}

func (r *Resolver) VisitBinaryExpr(node *ast.BinaryExpr) (none, error) {
	r.resolveExpr(node.Left)
	r.resolveExpr(node.Right)
	return none{}, nil
}

func (r *Resolver) VisitCallExpr(node *ast.CallExpr) (none, error) {
	r.resolveExpr(node.Callee)
	for _, arg := range node.Arguments {
		r.resolveExpr(arg)
	}
	return none{}, nil
}

func (r *Resolver) VisitGetExpr(node *ast.GetExpr) (none, error) {
	r.resolveExpr(node.Object)
	return none{}, nil
}

func (r *Resolver) VisitGroupingExpr(node *ast.GroupingExpr) (none, error) {
	r.resolveExpr(node.Expression)
	return none{}, nil
}

func (r *Resolver) VisitLiteralExpr(*ast.LiteralExpr) (none, error) {
	return none{}, nil
}

func (r *Resolver) VisitLogicalExpr(node *ast.LogicalExpr) (none, error) {
	r.resolveExpr(node.Left)
	r.resolveExpr(node.Right)
	return none{}, nil
}

func (r *Resolver) VisitSetExpr(node *ast.SetExpr) (none, error) {
	r.resolveExpr(node.Value)
	r.resolveExpr(node.Object)
	return none{}, nil
}

func (r *Resolver) VisitSuperExpr(node *ast.SuperExpr) (none, error) {
	switch r.class {
	case classNone:
		r.report(node.Keyword, diag.SuperOutsideClass)
	case classPlain:
		r.report(node.Keyword, diag.SuperWithoutSuperclass)
	default:
		r.resolveLocal(node, "super")
	}
	return none{}, nil
}

func (r *Resolver) VisitThisExpr(node *ast.ThisExpr) (none, error) {
	if r.class == classNone {
		r.report(node.Keyword, diag.ThisOutsideClass)
		return none{}, nil
	}
	r.resolveLocal(node, "this")
	return none{}, nil
}

func (r *Resolver) VisitUnaryExpr(node *ast.UnaryExpr) (none, error) {
	r.resolveExpr(node.Right)
	return none{}, nil
}

// VisitVariableExpr rejects a read of a variable inside its own
// initializer unless the name refers to a known global.
func (r *Resolver) VisitVariableExpr(node *ast.VariableExpr) (none, error) {
	name := node.Name.Lexeme
	if r.isInitializing(name) && (r.declaredLocally(name) || !r.knownGlobal(name)) {
		r.report(node.Name, diag.SelfReferencingInitializer)
		return none{}, nil
	}
	r.resolveLocal(node, name)
	return none{}, nil
}
