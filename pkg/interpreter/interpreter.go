package interpreter

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/logger"
	"github.com/lpahlavi/jlox/pkg/resolver"
	"github.com/lpahlavi/jlox/pkg/runtime"
)

// DefaultMaxCallDepth bounds nested calls when Options.MaxCallDepth is zero.
const DefaultMaxCallDepth = 1024

// Options configures an Interpreter.
type Options struct {
	Stdout       io.Writer
	MaxCallDepth int
	Logger       *slog.Logger
}

// Interpreter owns the global frame and the bindings of the program being
// run. It is not safe for concurrent use; independent interpreters share
// nothing.
type Interpreter struct {
	global   *runtime.Environment
	bindings resolver.Bindings
	stdout   io.Writer
	maxDepth int
	depth    int
	logger   *slog.Logger
}

// New constructs an interpreter with the natives installed in its globals.
func New(opts Options) *Interpreter {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.MaxCallDepth <= 0 {
		opts.MaxCallDepth = DefaultMaxCallDepth
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	i := &Interpreter{
		global:   runtime.NewEnvironment(nil),
		bindings: make(resolver.Bindings),
		stdout:   opts.Stdout,
		maxDepth: opts.MaxCallDepth,
		logger:   opts.Logger,
	}
	i.installNatives()
	return i
}

// GlobalEnvironment exposes the global frame.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// GlobalNames lists the names currently bound in the global frame.
func (i *Interpreter) GlobalNames() []string {
	return i.global.Keys()
}

// Resolve installs the bindings for the next program passed to Interpret.
// Functions keep the bindings of the program that declared them, so a
// previous program's table stays reachable only through its closures.
func (i *Interpreter) Resolve(bindings resolver.Bindings) {
	i.bindings = bindings
}

// Interpret runs stmts in order against the global frame. It returns the
// value of the last top-level expression statement that completed, or nil,
// along with one diagnostic per statement that failed.
func (i *Interpreter) Interpret(stmts []ast.Stmt) (runtime.Value, diag.List) {
	var (
		last  runtime.Value
		diags diag.List
	)
	start := time.Now()
	for _, stmt := range stmts {
		value, err := i.executeTopLevel(stmt)
		if err != nil {
			d := i.diagnosticFor(err, stmt)
			i.logger.Debug("runtime error", "code", d.Code.Name(), "line", d.Location.Line)
			diags.Add(d)
			continue
		}
		if _, ok := stmt.(*ast.ExpressionStmt); ok {
			last = value
		}
	}
	i.logger.Debug("interpret", "statements", len(stmts), "errors", len(diags), "elapsed", time.Since(start))
	return last, diags
}

func (i *Interpreter) executeTopLevel(stmt ast.Stmt) (runtime.Value, error) {
	i.depth = 0
	if exprStmt, ok := stmt.(*ast.ExpressionStmt); ok {
		return i.evaluate(exprStmt.Expression, i.global)
	}
	_, err := i.execute(stmt, i.global)
	return nil, err
}

// diagnosticFor converts an evaluation failure into a runtime diagnostic.
func (i *Interpreter) diagnosticFor(err error, stmt ast.Stmt) diag.Diagnostic {
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return rtErr.Diagnostic
	}
	return diag.New(diag.InternalFailure, diag.AtPos(stmt.Pos()), err.Error())
}
