package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"

	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/runtime"
)

func newTestSession() (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(SessionOptions{Stdout: &out}), &out
}

func TestSessionRunsProgram(t *testing.T) {
	s, out := newTestSession()
	res := s.Run(heredoc.Doc(`
		fun greet(name) { return "hi " + name; }
		print greet("lox");
	`))
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if got := out.String(); got != "hi lox\n" {
		t.Fatalf("output = %q", got)
	}
	if res.Echo {
		t.Fatalf("program with two statements should not echo")
	}
}

func TestSessionStageGating(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		stage diag.Stage
		count int
	}{
		{"lexical errors still parse", "print 1; @ print 2 +;", diag.StageLexical, 2},
		{"syntax stops resolution", "print 1; return 1; print ;", diag.StageSyntax, 1},
		{"resolution stops evaluation", "print 1; return 1;", diag.StageResolution, 1},
	}
	for _, tc := range cases {
		s, out := newTestSession()
		res := s.Run(tc.src)
		if len(res.Diagnostics) != tc.count {
			t.Fatalf("%s: got %d diagnostics: %v", tc.name, len(res.Diagnostics), res.Diagnostics)
		}
		if first, _ := res.Diagnostics.Earliest(); first.Stage != tc.stage {
			t.Fatalf("%s: earliest stage = %s, want %s", tc.name, first.Stage, tc.stage)
		}
		if out.Len() != 0 {
			t.Fatalf("%s: nothing should run, got output %q", tc.name, out.String())
		}
	}
}

func TestSessionRuntimeErrorsContinue(t *testing.T) {
	s, out := newTestSession()
	res := s.Run(`print "a" - 1; print 2;`)
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Stage != diag.StageRuntime {
		t.Fatalf("expected one runtime diagnostic, got %v", res.Diagnostics)
	}
	if got := out.String(); got != "2\n" {
		t.Fatalf("output = %q, want %q", got, "2\n")
	}
}

func TestSessionPersistsGlobals(t *testing.T) {
	s, out := newTestSession()
	for _, line := range []string{"var count = 1;", "fun bump() { count = count + 1; }", "bump();", "print count;"} {
		if res := s.Run(line); res.Diagnostics.HasErrors() {
			t.Fatalf("%q: %v", line, res.Diagnostics)
		}
	}
	if got := out.String(); got != "2\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestSessionFailedLineDoesNotLeakDeclarations(t *testing.T) {
	s, _ := newTestSession()
	if res := s.Run("var a = 1; return;"); !res.Diagnostics.HasStage(diag.StageResolution) {
		t.Fatalf("expected resolution error, got %v", res.Diagnostics)
	}
	res := s.Run("print a;")
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Code != diag.UndefinedVariable {
		t.Fatalf("expected undefined variable, got %v", res.Diagnostics)
	}
}

func TestSessionEcho(t *testing.T) {
	s, _ := newTestSession()
	res := s.Run("1 + 2;")
	if !res.Echo {
		t.Fatalf("lone expression should echo")
	}
	if got, ok := res.Value.(runtime.NumberValue); !ok || got.Val != 3 {
		t.Fatalf("Value = %#v, want 3", res.Value)
	}
	if res := s.Run("var x = 1;"); res.Echo {
		t.Fatalf("declaration should not echo")
	}
	if res := s.Run("nil + 1;"); res.Echo {
		t.Fatalf("failed expression should not echo")
	}
}

func TestSessionDumps(t *testing.T) {
	var out, dump bytes.Buffer
	s := NewSession(SessionOptions{Stdout: &out, Dump: &dump, DumpTokens: true, DumpAST: true})
	if res := s.Run("print 1 + 2;"); res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	got := dump.String()
	for _, want := range []string{"PRINT print null", "EOF", "(print (+ 1 2))"} {
		if !strings.Contains(got, want) {
			t.Fatalf("dump missing %q:\n%s", want, got)
		}
	}
	if out.String() != "3\n" {
		t.Fatalf("output = %q", out.String())
	}
}
