package grammar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
)

func TestDefaultGrammarIsValid(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("default grammar: %v", err)
	}
	if table.Package != "ast" {
		t.Fatalf("expected package ast, got %q", table.Package)
	}
	expr, ok := table.Family("Expr")
	if !ok {
		t.Fatalf("missing Expr family")
	}
	binary, ok := expr.Variant("Binary")
	if !ok {
		t.Fatalf("missing Expr.Binary")
	}
	want := []Field{{Name: "left", Type: "Expr"}, {Name: "operator", Type: "Token"}, {Name: "right", Type: "Expr"}}
	if len(binary.Fields) != len(want) {
		t.Fatalf("Binary fields: expected %d, got %d", len(want), len(binary.Fields))
	}
	for i := range want {
		if binary.Fields[i] != want[i] {
			t.Fatalf("Binary field %d: expected %+v, got %+v", i, want[i], binary.Fields[i])
		}
	}
	if _, ok := table.Family("Stmt"); !ok {
		t.Fatalf("missing Stmt family")
	}
}

func TestParseRule(t *testing.T) {
	cases := []struct {
		rule    string
		name    string
		fields  int
		wantErr bool
	}{
		{rule: "Literal : Object value", name: "Literal", fields: 1},
		{rule: "Call : Expr callee, Token paren, List<Expr> arguments", name: "Call", fields: 3},
		{rule: "Empty :", name: "Empty", fields: 0},
		{rule: "NoColon Expr left", wantErr: true},
		{rule: " : Expr left", wantErr: true},
		{rule: "Bad : Expr", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseRule(tc.rule)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.rule)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.rule, err)
		}
		if got.Name != tc.name || len(got.Fields) != tc.fields {
			t.Fatalf("%q: got %+v", tc.rule, got)
		}
	}
}

func TestVariantStringRoundTrip(t *testing.T) {
	v, err := ParseRule("Set : Expr object, Token name, Expr value")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v.String() != "Set : Expr object, Token name, Expr value" {
		t.Fatalf("unexpected rendering %q", v.String())
	}
}

func TestValidateReportsViolations(t *testing.T) {
	src := heredoc.Doc(`
		package: ast
		token_import: example.com/token
		families:
		  - name: Expr
		    variants:
		      - "Literal : Object value"
		      - "Literal : Object value"
		      - "Pair : Expr a, Expr a"
		      - "Ref : Missing target, Expr.Nope other, List<Widget> items"
		  - name: Expr
		    variants:
		      - "Other : Token tok"
	`)
	_, err := Decode([]byte(src))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, fragment := range []string{
		"duplicate family Expr",
		"duplicate variant Literal",
		"duplicate field a",
		`unknown type "Missing"`,
		`unknown variant "Expr.Nope"`,
		`unknown type "Widget"`,
	} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error:\n%s", fragment, msg)
		}
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	src := heredoc.Doc(`
		package: ast
		token_import: example.com/token
		extra: true
		families:
		  - name: Expr
		    variants:
		      - "Literal : Object value"
	`)
	if _, err := Decode([]byte(src)); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.yml")
	src := heredoc.Doc(`
		package: mini
		token_import: example.com/token
		families:
		  - name: Node
		    variants:
		      - "Leaf : Token tok"
		      - "Pair : Node left, Node.Leaf right, List<Node> rest"
	`)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	table, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.Package != "mini" || len(table.Families) != 1 || len(table.Families[0].Variants) != 2 {
		t.Fatalf("unexpected table %+v", table)
	}
	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestListElem(t *testing.T) {
	if elem, ok := ListElem("List<Stmt.Function>"); !ok || elem != "Stmt.Function" {
		t.Fatalf("unexpected ListElem result %q %v", elem, ok)
	}
	if _, ok := ListElem("Expr"); ok {
		t.Fatalf("Expr is not a list")
	}
}
