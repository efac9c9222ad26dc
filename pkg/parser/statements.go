package parser

import (
	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/token"
)

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()
	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	keyword := p.previous()
	name := p.consume(token.Identifier, "Expect class name.")

	var superclass *ast.VariableExpr
	if p.match(token.Less) {
		superName := p.consume(token.Identifier, "Expect superclass name.")
		superclass = ast.NewVariableExpr(superName.Pos(), superName)
	}

	p.consume(token.LeftBrace, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RightBrace, "Expect '}' after class body.")
	return ast.NewClassStmt(keyword.Pos(), name, superclass, methods)
}

// function parses the part of a function after "fun"; kind names it in
// messages ("function" or "method").
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.Identifier, "Expect "+kind+" name.")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.report(p.peek(), diag.TooManyParameters, "")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()
	return ast.NewFunctionStmt(name.Pos(), name, params, body)
}

func (p *Parser) varDeclaration() ast.Stmt {
	keyword := p.previous()
	name := p.consume(token.Identifier, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return ast.NewVarStmt(keyword.Pos(), name, initializer)
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.Break):
		return p.breakStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		pos := p.previous().Pos()
		return ast.NewBlockStmt(pos, p.block())
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars into { init; while (cond) { body; incr; } }.
func (p *Parser) forStatement() ast.Stmt {
	keyword := p.previous()
	pos := keyword.Pos()
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()
	if increment != nil {
		body = ast.NewBlockStmt(body.Pos(), []ast.Stmt{body, ast.NewExpressionStmt(increment.Pos(), increment)})
	}
	if condition == nil {
		condition = ast.NewLiteralExpr(pos, true)
	}
	body = ast.NewWhileStmt(pos, condition, body)
	if initializer != nil {
		body = ast.NewBlockStmt(pos, []ast.Stmt{initializer, body})
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	pos := p.previous().Pos()
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return ast.NewIfStmt(pos, condition, thenBranch, elseBranch)
}

func (p *Parser) printStatement() ast.Stmt {
	pos := p.previous().Pos()
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return ast.NewPrintStmt(pos, value)
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return ast.NewReturnStmt(keyword.Pos(), keyword, value)
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(token.Semicolon, "Expect ';' after 'break'.")
	return ast.NewBreakStmt(keyword.Pos(), keyword)
}

func (p *Parser) whileStatement() ast.Stmt {
	pos := p.previous().Pos()
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return ast.NewWhileStmt(pos, condition, body)
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return ast.NewExpressionStmt(expr.Pos(), expr)
}
