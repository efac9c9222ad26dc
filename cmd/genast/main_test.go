package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
)

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 64 {
		t.Fatalf("expected exit 64, got %d", code)
	}
	if !strings.Contains(stderr.String(), "usage: genast") {
		t.Fatalf("expected usage text, got %q", stderr.String())
	}
	if code := run([]string{"a", "b"}, &stdout, &stderr); code != 64 {
		t.Fatalf("expected exit 64 for two directories, got %d", code)
	}
}

func TestRunWritesThenChecks(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	if code := run([]string{dir}, &stdout, &stderr); code != 0 {
		t.Fatalf("generate failed (%d): %s", code, stderr.String())
	}
	for _, name := range []string{"expr_gen.go", "stmt_gen.go"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	if code := run([]string{"-check", dir}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected fresh output, got %d: %s", code, stdout.String())
	}
	if err := os.WriteFile(filepath.Join(dir, "expr_gen.go"), []byte("package ast\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	stdout.Reset()
	if code := run([]string{"-check", dir}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected stale exit 1, got %d", code)
	}
	if !strings.Contains(stdout.String(), "expr_gen.go") {
		t.Fatalf("expected diff naming expr_gen.go, got %q", stdout.String())
	}
}

func TestRunRejectsBadGrammar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	src := heredoc.Doc(`
		package: ast
		token_import: example.com/token
		families:
		  - name: Expr
		    variants:
		      - "Broken : Nowhere x"
	`)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	var stdout, stderr bytes.Buffer
	out := filepath.Join(dir, "out")
	if code := run([]string{"-grammar", path, out}, &stdout, &stderr); code != 65 {
		t.Fatalf("expected exit 65, got %d (%s)", code, stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no output directory, got %v", err)
	}
	if code := run([]string{"-grammar", filepath.Join(dir, "missing.yml"), out}, &stdout, &stderr); code != 66 {
		t.Fatalf("expected exit 66 for missing grammar, got %d", code)
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "file")
	if err := os.WriteFile(target, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{target}, &stdout, &stderr); code != 73 {
		t.Fatalf("expected exit 73, got %d", code)
	}
}

func TestRunRejectsHandWrittenNameCollision(t *testing.T) {
	dir := t.TempDir()
	src := "package ast\n\nfunc PrintStmt(s Stmt) string { return \"\" }\n"
	if err := os.WriteFile(filepath.Join(dir, "printer.go"), []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{dir}, &stdout, &stderr); code != 65 {
		t.Fatalf("expected exit 65, got %d (%s)", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "PrintStmt") {
		t.Fatalf("expected collision naming PrintStmt, got %q", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "stmt_gen.go")); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written, got %v", err)
	}
}
