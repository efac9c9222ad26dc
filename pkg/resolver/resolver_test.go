package resolver

import (
	"testing"

	"github.com/MakeNowJust/heredoc"

	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/parser"
	"github.com/lpahlavi/jlox/pkg/scanner"
)

func parseProgram(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, diags := scanner.New(src).ScanTokens()
	if diags.HasErrors() {
		t.Fatalf("lexical diagnostics: %v", diags)
	}
	stmts, diags := parser.New(tokens).Parse()
	if diags.HasErrors() {
		t.Fatalf("syntax diagnostics: %v", diags)
	}
	return stmts
}

func resolveSource(t *testing.T, r *Resolver, src string) (Bindings, diag.List) {
	t.Helper()
	return r.Resolve(parseProgram(t, src))
}

func expectCodes(t *testing.T, diags diag.List, want ...diag.Code) {
	t.Helper()
	if len(diags) != len(want) {
		t.Fatalf("expected %d diagnostics, got %d: %v", len(want), len(diags), diags)
	}
	for i, code := range want {
		if diags[i].Code != code {
			t.Fatalf("diagnostic %d: expected %s, got %s (%s)", i, code.Name(), diags[i].Code.Name(), diags[i].Message)
		}
		if diags[i].Stage != diag.StageResolution {
			t.Fatalf("diagnostic %d: expected resolution stage, got %s", i, diags[i].Stage)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []diag.Code
	}{
		{"self initializer in block", "{ var a = a; }", []diag.Code{diag.SelfReferencingInitializer}},
		{"self initializer at top level", "var a = a;", []diag.Code{diag.SelfReferencingInitializer}},
		{"redeclare local", "{ var a = 1; var a = 2; }", []diag.Code{diag.AlreadyDeclared}},
		{"duplicate parameter", "fun f(a, a) {}", []diag.Code{diag.AlreadyDeclared}},
		{"top-level return", "return 1;", []diag.Code{diag.ReturnOutsideFunction}},
		{"value from init", "class A { init() { return 1; } }", []diag.Code{diag.ReturnValueFromInitializer}},
		{"this outside class", "print this;", []diag.Code{diag.ThisOutsideClass}},
		{"this in function", "fun f() { return this; }", []diag.Code{diag.ThisOutsideClass}},
		{"super outside class", "print super.x;", []diag.Code{diag.SuperOutsideClass}},
		{"super without superclass", "class A { f() { super.f(); } }", []diag.Code{diag.SuperWithoutSuperclass}},
		{"self inheritance", "class A < A {}", []diag.Code{diag.SelfInheritance}},
		{"break outside loop", "break;", []diag.Code{diag.BreakOutsideLoop}},
		{"break in function inside loop", "while (true) { fun f() { break; } }", []diag.Code{diag.BreakOutsideLoop}},
		{"several independent errors", "return; print this; { var b = 1; var b = 2; }", []diag.Code{
			diag.ReturnOutsideFunction, diag.ThisOutsideClass, diag.AlreadyDeclared,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, diags := resolveSource(t, New(), tc.src)
			expectCodes(t, diags, tc.want...)
		})
	}
}

func TestResolveAcceptsValidPrograms(t *testing.T) {
	src := heredoc.Doc(`
		var x = 1;
		{ var x = x + 1; print x; }
		var x = x;
		class A { init() { return; } get() { return this; } }
		class B < A { get() { return super.get(); } }
		fun counter() { var i = 0; fun inc() { i = i + 1; return i; } return inc; }
		for (var i = 0; i < 3; i = i + 1) { if (i == 1) break; }
		var c = clock();
	`)
	_, diags := resolveSource(t, New("clock"), src)
	expectCodes(t, diags)
}

func TestResolveShadowingInitializerReadsGlobal(t *testing.T) {
	stmts := parseProgram(t, "var x = 1; { var x = x + 1; }")
	bindings, diags := New().Resolve(stmts)
	expectCodes(t, diags)
	inner := stmts[1].(*ast.BlockStmt).Statements[0].(*ast.VarStmt)
	use := inner.Initializer.(*ast.BinaryExpr).Left.(*ast.VariableExpr)
	if _, ok := bindings[use]; ok {
		t.Fatalf("expected x to be left for global lookup")
	}
}

func TestResolveShadowingInitializerRejectsOuterLocal(t *testing.T) {
	cases := []string{
		"{ var a = 1; { var a = a; print a; } }",
		"{ var x = 1; { var x = x + 1; } }",
		"fun f(a) { { var a = a; } }",
		"var g = 1; { var g = 2; { var g = g; } }",
	}
	for _, src := range cases {
		_, diags := resolveSource(t, New(), src)
		expectCodes(t, diags, diag.SelfReferencingInitializer)
	}
}

func TestResolveRecordsDistances(t *testing.T) {
	stmts := parseProgram(t, heredoc.Doc(`
		var g = 0;
		fun f(a) {
		  { print a; print g; }
		}
	`))
	bindings, diags := New().Resolve(stmts)
	expectCodes(t, diags)
	fn := stmts[1].(*ast.FunctionStmt)
	block := fn.Body[0].(*ast.BlockStmt)
	useA := block.Statements[0].(*ast.PrintStmt).Expression
	useG := block.Statements[1].(*ast.PrintStmt).Expression
	if depth, ok := bindings[useA]; !ok || depth != 1 {
		t.Fatalf("expected a at distance 1, got %d (%v)", depth, ok)
	}
	if _, ok := bindings[useG]; ok {
		t.Fatalf("globals must not be annotated")
	}
}

func TestResolveSuperAndThisDistances(t *testing.T) {
	stmts := parseProgram(t, "class A {} class B < A { m() { return super.m; } }")
	bindings, diags := New().Resolve(stmts)
	expectCodes(t, diags)
	method := stmts[1].(*ast.ClassStmt).Methods[0]
	super := method.Body[0].(*ast.ReturnStmt).Value
	// method scope -> this scope -> super scope
	if depth, ok := bindings[super]; !ok || depth != 2 {
		t.Fatalf("expected super at distance 2, got %d (%v)", depth, ok)
	}
}

func TestResolverRemembersGlobalsAcrossCalls(t *testing.T) {
	r := New()
	if _, diags := resolveSource(t, r, "var a = 1;"); diags.HasErrors() {
		t.Fatalf("unexpected diagnostics %v", diags)
	}
	if _, diags := resolveSource(t, r, "var a = a + 1;"); diags.HasErrors() {
		t.Fatalf("a is a known global, got %v", diags)
	}
	if _, diags := resolveSource(t, r, "{ var b = b; }"); !diags.HasErrors() {
		t.Fatalf("expected b to be rejected")
	}
	if _, diags := resolveSource(t, r, "var c = 1; return;"); !diags.HasErrors() {
		t.Fatalf("expected return error")
	}
	_, diags := resolveSource(t, r, "var c = c;")
	expectCodes(t, diags, diag.SelfReferencingInitializer)
}
