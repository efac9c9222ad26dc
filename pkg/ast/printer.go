package ast

import (
	"strconv"
	"strings"
)

// FormatExpr renders an expression in prefix form, e.g. (+ 1 (* 2 3)).
func FormatExpr(expr Expr) string {
	out, err := AcceptExpr[string](expr, printer{})
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return out
}

// FormatStmt renders a statement in prefix form.
func FormatStmt(stmt Stmt) string {
	out, err := AcceptStmt[string](stmt, printer{})
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return out
}

// FormatProgram renders one statement per line.
func FormatProgram(stmts []Stmt) string {
	var b strings.Builder
	for _, stmt := range stmts {
		b.WriteString(FormatStmt(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}

type printer struct{}

func (p printer) parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, part := range parts {
		b.WriteByte(' ')
		b.WriteString(part)
	}
	b.WriteByte(')')
	return b.String()
}

func (p printer) exprs(exprs []Expr) []string {
	out := make([]string, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, FormatExpr(e))
	}
	return out
}

func (p printer) stmts(stmts []Stmt) []string {
	out := make([]string, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, FormatStmt(s))
	}
	return out
}

func (p printer) VisitAssignExpr(node *AssignExpr) (string, error) {
	return p.parenthesize("= "+node.Name.Lexeme, FormatExpr(node.Value)), nil
}

func (p printer) VisitBinaryExpr(node *BinaryExpr) (string, error) {
	return p.parenthesize(node.Operator.Lexeme, FormatExpr(node.Left), FormatExpr(node.Right)), nil
}

func (p printer) VisitCallExpr(node *CallExpr) (string, error) {
	return p.parenthesize("call", append([]string{FormatExpr(node.Callee)}, p.exprs(node.Arguments)...)...), nil
}

func (p printer) VisitGetExpr(node *GetExpr) (string, error) {
	return p.parenthesize(".", FormatExpr(node.Object), node.Name.Lexeme), nil
}

func (p printer) VisitGroupingExpr(node *GroupingExpr) (string, error) {
	return p.parenthesize("group", FormatExpr(node.Expression)), nil
}

func (p printer) VisitLiteralExpr(node *LiteralExpr) (string, error) {
	switch v := node.Value.(type) {
	case nil:
		return "nil", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		return strconv.Quote(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "?", nil
	}
}

func (p printer) VisitLogicalExpr(node *LogicalExpr) (string, error) {
	return p.parenthesize(node.Operator.Lexeme, FormatExpr(node.Left), FormatExpr(node.Right)), nil
}

func (p printer) VisitSetExpr(node *SetExpr) (string, error) {
	return p.parenthesize("=", FormatExpr(node.Object), node.Name.Lexeme, FormatExpr(node.Value)), nil
}

func (p printer) VisitSuperExpr(node *SuperExpr) (string, error) {
	return p.parenthesize("super", node.Method.Lexeme), nil
}

func (p printer) VisitThisExpr(*ThisExpr) (string, error) {
	return "this", nil
}

func (p printer) VisitUnaryExpr(node *UnaryExpr) (string, error) {
	return p.parenthesize(node.Operator.Lexeme, FormatExpr(node.Right)), nil
}

func (p printer) VisitVariableExpr(node *VariableExpr) (string, error) {
	return node.Name.Lexeme, nil
}

func (p printer) VisitBlockStmt(node *BlockStmt) (string, error) {
	return p.parenthesize("block", p.stmts(node.Statements)...), nil
}

func (p printer) VisitBreakStmt(*BreakStmt) (string, error) {
	return "(break)", nil
}

func (p printer) VisitClassStmt(node *ClassStmt) (string, error) {
	parts := []string{node.Name.Lexeme}
	if node.Superclass != nil {
		parts = append(parts, "< "+node.Superclass.Name.Lexeme)
	}
	for _, method := range node.Methods {
		parts = append(parts, FormatStmt(method))
	}
	return p.parenthesize("class", parts...), nil
}

func (p printer) VisitExpressionStmt(node *ExpressionStmt) (string, error) {
	return p.parenthesize(";", FormatExpr(node.Expression)), nil
}

func (p printer) VisitFunctionStmt(node *FunctionStmt) (string, error) {
	params := make([]string, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, param.Lexeme)
	}
	parts := append([]string{node.Name.Lexeme, "(" + strings.Join(params, " ") + ")"}, p.stmts(node.Body)...)
	return p.parenthesize("fun", parts...), nil
}

func (p printer) VisitIfStmt(node *IfStmt) (string, error) {
	if node.ElseBranch == nil {
		return p.parenthesize("if", FormatExpr(node.Condition), FormatStmt(node.ThenBranch)), nil
	}
	return p.parenthesize("if-else", FormatExpr(node.Condition), FormatStmt(node.ThenBranch), FormatStmt(node.ElseBranch)), nil
}

func (p printer) VisitPrintStmt(node *PrintStmt) (string, error) {
	return p.parenthesize("print", FormatExpr(node.Expression)), nil
}

func (p printer) VisitReturnStmt(node *ReturnStmt) (string, error) {
	if node.Value == nil {
		return "(return)", nil
	}
	return p.parenthesize("return", FormatExpr(node.Value)), nil
}

func (p printer) VisitVarStmt(node *VarStmt) (string, error) {
	if node.Initializer == nil {
		return p.parenthesize("var", node.Name.Lexeme), nil
	}
	return p.parenthesize("var", node.Name.Lexeme, "=", FormatExpr(node.Initializer)), nil
}

func (p printer) VisitWhileStmt(node *WhileStmt) (string, error) {
	return p.parenthesize("while", FormatExpr(node.Condition), FormatStmt(node.Body)), nil
}
