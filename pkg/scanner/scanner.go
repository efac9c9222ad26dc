// Package scanner turns Lox source text into tokens.
package scanner

import (
	"strconv"

	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/token"
)

// Scanner holds the state of one scan. Create a new Scanner to rescan.
type Scanner struct {
	src    []rune
	start  int
	cur    int
	line   int
	col    int
	sLine  int
	sCol   int
	tokens []token.Token
	diags  diag.List
}

// New returns a scanner over source.
func New(source string) *Scanner {
	return &Scanner{src: []rune(source), line: 1, col: 1}
}

// ScanTokens scans the whole source. The token list always ends with EOF;
// unrecognized input is reported and skipped.
func (s *Scanner) ScanTokens() ([]token.Token, diag.List) {
	for !s.atEnd() {
		s.start = s.cur
		s.sLine, s.sCol = s.line, s.col
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.Token{Kind: token.EOF, Line: s.line, Column: s.col})
	return s.tokens, s.diags
}

func (s *Scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case '(':
		s.emit(token.LeftParen, nil)
	case ')':
		s.emit(token.RightParen, nil)
	case '{':
		s.emit(token.LeftBrace, nil)
	case '}':
		s.emit(token.RightBrace, nil)
	case ',':
		s.emit(token.Comma, nil)
	case '.':
		s.emit(token.Dot, nil)
	case '-':
		s.emit(token.Minus, nil)
	case '+':
		s.emit(token.Plus, nil)
	case ';':
		s.emit(token.Semicolon, nil)
	case '*':
		s.emit(token.Star, nil)
	case '!':
		s.emit(s.pick('=', token.BangEqual, token.Bang), nil)
	case '=':
		s.emit(s.pick('=', token.EqualEqual, token.Equal), nil)
	case '<':
		s.emit(s.pick('=', token.LessEqual, token.Less), nil)
	case '>':
		s.emit(s.pick('=', token.GreaterEqual, token.Greater), nil)
	case '/':
		switch {
		case s.match('/'):
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		case s.match('*'):
			s.blockComment()
		default:
			s.emit(token.Slash, nil)
		}
	case ' ', '\r', '\t', '\n':
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(ch):
			s.scanNumber()
		case isIdentStart(ch):
			s.scanIdentifier()
		default:
			s.report(diag.UnexpectedCharacter, string(ch))
		}
	}
}

func (s *Scanner) blockComment() {
	for !s.atEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return
		}
		s.advance()
	}
	s.report(diag.UnterminatedComment, "/*")
}

func (s *Scanner) scanString() {
	for !s.atEnd() && s.peek() != '"' {
		s.advance()
	}
	if s.atEnd() {
		s.report(diag.UnterminatedString, `"`)
		return
	}
	s.advance()
	s.emit(token.String, string(s.src[s.start+1:s.cur-1]))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	// A digit run only fails with ErrRange, and then value is ±Inf.
	value, _ := strconv.ParseFloat(string(s.src[s.start:s.cur]), 64)
	s.emit(token.Number, value)
}

func (s *Scanner) scanIdentifier() {
	for isIdentPart(s.peek()) {
		s.advance()
	}
	s.emit(token.Lookup(string(s.src[s.start:s.cur])), nil)
}

func (s *Scanner) emit(kind token.Kind, literal any) {
	s.tokens = append(s.tokens, token.Token{
		Kind:    kind,
		Lexeme:  string(s.src[s.start:s.cur]),
		Literal: literal,
		Line:    s.sLine,
		Column:  s.sCol,
	})
}

// report records a lexical error at the start of the current lexeme.
func (s *Scanner) report(code diag.Code, lexeme string) {
	s.diags.Add(diag.New(code, diag.Location{Line: s.sLine, Column: s.sCol, Lexeme: lexeme}, ""))
}

func (s *Scanner) pick(next rune, two, one token.Kind) token.Kind {
	if s.match(next) {
		return two
	}
	return one
}

func (s *Scanner) match(expected rune) bool {
	if s.atEnd() || s.src[s.cur] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) advance() rune {
	ch := s.src[s.cur]
	s.cur++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() rune {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func (s *Scanner) atEnd() bool {
	return s.cur >= len(s.src)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
