package ast

import (
	"testing"

	"github.com/lpahlavi/jlox/pkg/token"
)

func tok(kind token.Kind, lexeme string, col int) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: 1, Column: col}
}

func TestFormatNestedBinary(t *testing.T) {
	// -123 * (45.67)
	expr := NewBinaryExpr(
		token.Position{Line: 1, Column: 1},
		NewUnaryExpr(token.Position{Line: 1, Column: 1}, tok(token.Minus, "-", 1), NewLiteralExpr(token.Position{Line: 1, Column: 2}, 123.0)),
		tok(token.Star, "*", 6),
		NewGroupingExpr(token.Position{Line: 1, Column: 8}, NewLiteralExpr(token.Position{Line: 1, Column: 9}, 45.67)),
	)
	if got := FormatExpr(expr); got != "(* (- 123) (group 45.67))" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestFormatStatements(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	name := tok(token.Identifier, "a", 5)
	stmts := []Stmt{
		NewVarStmt(pos, name, NewLiteralExpr(pos, "hi")),
		NewIfStmt(pos, NewLiteralExpr(pos, true), NewPrintStmt(pos, NewVariableExpr(pos, name)), nil),
		NewReturnStmt(pos, tok(token.Return, "return", 1), nil),
	}
	want := "(var a = \"hi\")\n(if true (print a))\n(return)\n"
	if got := FormatProgram(stmts); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNodesKeepConstructorPosition(t *testing.T) {
	pos := token.Position{Line: 4, Column: 7}
	node := NewThisExpr(pos, tok(token.This, "this", 7))
	if node.Pos() != pos {
		t.Fatalf("expected %v, got %v", pos, node.Pos())
	}
}

func TestAcceptRejectsNil(t *testing.T) {
	if _, err := AcceptExpr[string](nil, printer{}); err == nil {
		t.Fatalf("expected error for nil expression")
	}
}
