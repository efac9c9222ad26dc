package parser

import (
	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-recursive; the target is parsed as an ordinary
// expression and then checked.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()
	if !p.match(token.Equal) {
		return expr
	}
	equals := p.previous()
	value := p.assignment()
	switch target := expr.(type) {
	case *ast.VariableExpr:
		return ast.NewAssignExpr(target.Pos(), target.Name, value)
	case *ast.GetExpr:
		return ast.NewSetExpr(target.Pos(), target.Object, target.Name, value)
	}
	p.report(equals, diag.InvalidAssignmentTarget, "")
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		operator := p.previous()
		right := p.and()
		expr = ast.NewLogicalExpr(expr.Pos(), expr, operator, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		operator := p.previous()
		right := p.equality()
		expr = ast.NewLogicalExpr(expr.Pos(), expr, operator, right)
	}
	return expr
}

// binary parses one left-associative precedence level.
func (p *Parser) binary(operand func() ast.Expr, operators ...token.Kind) ast.Expr {
	expr := operand()
	for p.match(operators...) {
		operator := p.previous()
		right := operand()
		expr = ast.NewBinaryExpr(expr.Pos(), expr, operator, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, token.Slash, token.Star)
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right := p.unary()
		return ast.NewUnaryExpr(operator.Pos(), operator, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = ast.NewGetExpr(expr.Pos(), expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.report(p.peek(), diag.TooManyArguments, "")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return ast.NewCallExpr(callee.Pos(), callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	tok := p.peek()
	pos := tok.Pos()
	switch {
	case p.match(token.False):
		return ast.NewLiteralExpr(pos, false)
	case p.match(token.True):
		return ast.NewLiteralExpr(pos, true)
	case p.match(token.Nil):
		return ast.NewLiteralExpr(pos, nil)
	case p.match(token.Number, token.String):
		return ast.NewLiteralExpr(pos, tok.Literal)
	case p.match(token.Super):
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Identifier, "Expect superclass method name.")
		return ast.NewSuperExpr(pos, tok, method)
	case p.match(token.This):
		return ast.NewThisExpr(pos, tok)
	case p.match(token.Identifier):
		return ast.NewVariableExpr(pos, tok)
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return ast.NewGroupingExpr(pos, expr)
	}
	p.fail(tok, diag.ExpectExpression, "")
	return nil
}
