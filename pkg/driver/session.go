// Package driver connects the lox pipeline stages, loads configuration and
// renders diagnostics for the command-line tools.
package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/interpreter"
	"github.com/lpahlavi/jlox/pkg/logger"
	"github.com/lpahlavi/jlox/pkg/parser"
	"github.com/lpahlavi/jlox/pkg/resolver"
	"github.com/lpahlavi/jlox/pkg/runtime"
	"github.com/lpahlavi/jlox/pkg/scanner"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	Stdout       io.Writer
	MaxCallDepth int
	Logger       *slog.Logger
	// DumpTokens and DumpAST write the scanner and parser output to Dump
	// before the program runs.
	DumpTokens bool
	DumpAST    bool
	Dump       io.Writer
}

// Session runs sources against one persistent global environment.
type Session struct {
	interp   *interpreter.Interpreter
	resolver *resolver.Resolver
	logger   *slog.Logger
	opts     SessionOptions
}

// Result is the outcome of one Run.
type Result struct {
	Diagnostics diag.List
	// Value holds the value of the last top-level expression statement.
	Value runtime.Value
	// Echo is set when the source was a single expression statement that
	// evaluated without error.
	Echo bool
}

// NewSession builds a session with a fresh interpreter.
func NewSession(opts SessionOptions) *Session {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Dump == nil {
		opts.Dump = opts.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	interp := interpreter.New(interpreter.Options{
		Stdout:       opts.Stdout,
		MaxCallDepth: opts.MaxCallDepth,
		Logger:       opts.Logger,
	})
	return &Session{
		interp:   interp,
		resolver: resolver.New(interp.GlobalNames()...),
		logger:   opts.Logger,
		opts:     opts,
	}
}

// Interpreter exposes the session's interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Run scans, parses, resolves and evaluates src. The parser runs over the
// recovered token stream even after lexical errors; resolution runs only on
// a clean parse and evaluation only on a clean resolution.
func (s *Session) Run(src string) Result {
	var res Result

	start := time.Now()
	tokens, lexDiags := scanner.New(src).ScanTokens()
	res.Diagnostics = append(res.Diagnostics, lexDiags...)
	s.logger.Debug("scan", "tokens", len(tokens), "errors", len(lexDiags), "elapsed", time.Since(start))
	if s.opts.DumpTokens {
		for _, tok := range tokens {
			fmt.Fprintln(s.opts.Dump, tok.String())
		}
	}

	start = time.Now()
	stmts, parseDiags := parser.New(tokens).Parse()
	res.Diagnostics = append(res.Diagnostics, parseDiags...)
	s.logger.Debug("parse", "statements", len(stmts), "errors", len(parseDiags), "elapsed", time.Since(start))
	if s.opts.DumpAST && !res.Diagnostics.HasErrors() {
		fmt.Fprint(s.opts.Dump, ast.FormatProgram(stmts))
	}
	if res.Diagnostics.HasErrors() {
		return res
	}

	start = time.Now()
	bindings, resolveDiags := s.resolver.Resolve(stmts)
	res.Diagnostics = append(res.Diagnostics, resolveDiags...)
	s.logger.Debug("resolve", "bindings", len(bindings), "errors", len(resolveDiags), "elapsed", time.Since(start))
	if res.Diagnostics.HasErrors() {
		return res
	}
	s.interp.Resolve(bindings)

	value, runtimeDiags := s.interp.Interpret(stmts)
	res.Diagnostics = append(res.Diagnostics, runtimeDiags...)
	res.Value = value
	if len(stmts) == 1 && len(runtimeDiags) == 0 {
		_, res.Echo = stmts[0].(*ast.ExpressionStmt)
	}
	return res
}
