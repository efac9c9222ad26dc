package parser

import "github.com/lpahlavi/jlox/pkg/token"

// synchronize discards tokens until just after a ';' or just before a
// token that starts a statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If,
			token.While, token.Print, token.Return, token.Break:
			return
		}
		p.advance()
	}
}
