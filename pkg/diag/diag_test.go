package diag

import (
	"testing"

	"github.com/lpahlavi/jlox/pkg/token"
)

func TestRegistryStagesMatchCodeRanges(t *testing.T) {
	for _, code := range Codes() {
		want := Stage(int(code) / 100)
		if code.Stage() != want {
			t.Fatalf("%s (%s): expected stage %s, got %s", code, code.Name(), want, code.Stage())
		}
		if code.DefaultMessage() == "" {
			t.Fatalf("%s has no default message", code)
		}
	}
}

func TestRegistryNamesAreUnique(t *testing.T) {
	seen := map[string]Code{}
	for _, code := range Codes() {
		if prev, ok := seen[code.Name()]; ok {
			t.Fatalf("name %q shared by %s and %s", code.Name(), prev, code)
		}
		seen[code.Name()] = code
	}
}

func TestNewUsesDefaultMessage(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Lexeme: "x", Line: 3, Column: 5}
	d := New(UndefinedVariable, At(tok), "")
	if d.Message != "Undefined variable." {
		t.Fatalf("unexpected message %q", d.Message)
	}
	if d.Stage != StageRuntime {
		t.Fatalf("expected runtime stage, got %s", d.Stage)
	}
	if d.Location.Line != 3 || d.Location.Column != 5 || d.Location.Lexeme != "x" || d.Location.AtEnd {
		t.Fatalf("unexpected location %+v", d.Location)
	}
}

func TestAtEOFMarksEnd(t *testing.T) {
	loc := At(token.Token{Kind: token.EOF, Line: 9})
	if !loc.AtEnd {
		t.Fatalf("expected AtEnd for EOF token")
	}
}

func TestEarliestPrefersEarlierStage(t *testing.T) {
	var list List
	list.Add(New(OperandMustBeNumber, Location{Line: 1}, ""))
	list.Add(New(ExpectExpression, Location{Line: 4}, ""))
	list.Add(New(UnexpectedCharacter, Location{Line: 7}, ""))
	list.Add(New(UnterminatedString, Location{Line: 8}, ""))
	got, ok := list.Earliest()
	if !ok {
		t.Fatalf("expected a diagnostic")
	}
	if got.Code != UnexpectedCharacter {
		t.Fatalf("expected first lexical diagnostic, got %s", got.Code)
	}
	if !list.HasStage(StageSyntax) || list.HasStage(StageResolution) {
		t.Fatalf("HasStage mismatch")
	}
	if _, ok := List(nil).Earliest(); ok {
		t.Fatalf("expected empty list to have no earliest diagnostic")
	}
}
