package token

import "testing"

func TestLookupKeywords(t *testing.T) {
	cases := map[string]Kind{
		"class":  Class,
		"while":  While,
		"break":  Break,
		"orchid": Identifier,
		"Var":    Identifier,
		"_":      Identifier,
	}
	for lexeme, want := range cases {
		if got := Lookup(lexeme); got != want {
			t.Fatalf("Lookup(%q) = %s, want %s", lexeme, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := GreaterEqual.String(); got != "GREATER_EQUAL" {
		t.Fatalf("GreaterEqual.String() = %q", got)
	}
	if got := Kind(999).String(); got != "unknown_kind_999" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Number, Lexeme: "1.5", Literal: 1.5, Line: 1, Column: 1}
	if got := tok.String(); got != "NUMBER 1.5 1.5" {
		t.Fatalf("Token.String() = %q", got)
	}
	semi := Token{Kind: Semicolon, Lexeme: ";", Line: 2, Column: 4}
	if got := semi.String(); got != "SEMICOLON ; null" {
		t.Fatalf("Token.String() = %q", got)
	}
	if got := semi.Pos().String(); got != "2:4" {
		t.Fatalf("Pos().String() = %q", got)
	}
}
