// Package parser builds Lox syntax trees from tokens by recursive descent.
package parser

import (
	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/token"
)

// maxArgs bounds both call arguments and function parameters.
const maxArgs = 255

// Parser consumes one token stream. It never panics on malformed input.
type Parser struct {
	tokens []token.Token
	cur    int
	diags  diag.List
}

// bailout unwinds the parser to the enclosing declaration after a syntax
// error has been reported.
type bailout struct{}

// New returns a parser over tokens. A missing trailing EOF is supplied.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF, Line: 1, Column: 1}
		if n := len(tokens); n > 0 {
			eof.Line = tokens[n-1].Line
			eof.Column = tokens[n-1].Column + len([]rune(tokens[n-1].Lexeme))
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	return &Parser{tokens: tokens}
}

// Parse parses a whole program. Every malformed declaration yields exactly
// one diagnostic and is dropped from the result; parsing resumes at the next
// statement boundary.
func (p *Parser) Parse() ([]ast.Stmt, diag.List) {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, p.diags
}

// ParseExpression parses a single expression followed by EOF.
func (p *Parser) ParseExpression() (expr ast.Expr, diags diag.List) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			expr, diags = nil, p.diags
		}
	}()
	expr = p.expression()
	if !p.atEnd() {
		p.fail(p.peek(), diag.ExpectToken, "Expect end of expression.")
	}
	return expr, p.diags
}

// Incomplete reports whether diags only describe input that ended too
// early, such as an unclosed block or string. A line-oriented front end uses
// it to ask for more input instead of reporting errors.
func Incomplete(diags diag.List) bool {
	if len(diags) == 0 {
		return false
	}
	for _, d := range diags {
		switch {
		case d.Code == diag.UnterminatedString, d.Code == diag.UnterminatedComment:
		case d.Stage == diag.StageSyntax && d.Location.AtEnd:
		default:
			return false
		}
	}
	return true
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.peek(), diag.ExpectToken, message)
	return token.Token{}
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.cur]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.cur-1]
}

// report records a diagnostic without unwinding.
func (p *Parser) report(tok token.Token, code diag.Code, message string) {
	p.diags.Add(diag.New(code, diag.At(tok), message))
}

// fail records a diagnostic and unwinds to the enclosing declaration.
func (p *Parser) fail(tok token.Token, code diag.Code, message string) {
	p.report(tok, code, message)
	panic(bailout{})
}
