// Package resolver performs static scope resolution over a Lox program.
//
// For every identifier use that refers to a local variable it records how
// many scopes separate the use from the declaration. Uses that are not
// recorded are looked up in the global frame at run time.
package resolver

import (
	"github.com/lpahlavi/jlox/pkg/ast"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/token"
)

// Bindings maps an identifier use (Variable, Assign, This or Super node) to
// the scope distance of its declaration. A missing key means global.
type Bindings map[ast.Expr]int

type functionKind int

const (
	functionNone functionKind = iota
	functionPlain
	functionMethod
	functionInitializer
)

type classKind int

const (
	classNone classKind = iota
	classPlain
	classSub
)

// none is the result type of the resolver's visitor methods.
type none = struct{}

// Resolver keeps the set of known global names between calls to Resolve,
// so a single Resolver can serve every entry of an interactive session.
type Resolver struct {
	globals map[string]bool

	scopes       []map[string]bool
	pending      map[string]bool
	initializing []string
	bindings     Bindings
	diags        diag.List
	function     functionKind
	class        classKind
	loopDepth    int
}

// New returns a resolver that treats globals (typically the natives) as
// already declared.
func New(globals ...string) *Resolver {
	r := &Resolver{globals: make(map[string]bool, len(globals))}
	for _, name := range globals {
		r.globals[name] = true
	}
	return r
}

// DeclareGlobal records a global name defined outside of resolved code.
func (r *Resolver) DeclareGlobal(name string) {
	r.globals[name] = true
}

// Resolve resolves a program. Top-level declarations become known globals
// for later calls only when the program resolved without diagnostics.
func (r *Resolver) Resolve(stmts []ast.Stmt) (Bindings, diag.List) {
	r.scopes = nil
	r.pending = make(map[string]bool)
	r.initializing = nil
	r.bindings = make(Bindings)
	r.diags = nil
	r.function = functionNone
	r.class = classNone
	r.loopDepth = 0

	r.resolveStmts(stmts)

	if !r.diags.HasErrors() {
		for name := range r.pending {
			r.globals[name] = true
		}
	}
	return r.bindings, r.diags
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	if stmt == nil {
		return
	}
	_, _ = ast.AcceptStmt[none](stmt, r)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	if expr == nil {
		return
	}
	_, _ = ast.AcceptExpr[none](expr, r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		r.pending[name.Lexeme] = true
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.report(name, diag.AlreadyDeclared)
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records the distance to the innermost scope declaring name.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) bool {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.bindings[expr] = len(r.scopes) - 1 - i
			return true
		}
	}
	return false
}

func (r *Resolver) declaredLocally(name string) bool {
	for _, scope := range r.scopes {
		if _, ok := scope[name]; ok {
			return true
		}
	}
	return false
}

func (r *Resolver) knownGlobal(name string) bool {
	return r.globals[name] || r.pending[name]
}

func (r *Resolver) isInitializing(name string) bool {
	for _, n := range r.initializing {
		if n == name {
			return true
		}
	}
	return false
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction, enclosingLoop := r.function, r.loopDepth
	r.function, r.loopDepth = kind, 0
	defer func() { r.function, r.loopDepth = enclosingFunction, enclosingLoop }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) report(tok token.Token, code diag.Code) {
	r.diags.Add(diag.New(code, diag.At(tok), ""))
}
