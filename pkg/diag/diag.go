// Package diag holds the error-code registry shared by every pipeline stage.
//
// Stages only construct Diagnostic values (code, stage, message, location);
// formatting and exit-status decisions belong to the driver.
package diag

import (
	"fmt"

	"github.com/lpahlavi/jlox/pkg/token"
)

// Stage identifies the pipeline stage that detected a problem.
type Stage int

const (
	StageLexical Stage = iota + 1
	StageSyntax
	StageResolution
	StageRuntime
)

func (s Stage) String() string {
	switch s {
	case StageLexical:
		return "lexical"
	case StageSyntax:
		return "syntax"
	case StageResolution:
		return "resolution"
	case StageRuntime:
		return "runtime"
	default:
		return fmt.Sprintf("unknown_stage_%d", int(s))
	}
}

// Location points at the source of a diagnostic. Lexeme is empty when no
// token is available; AtEnd marks diagnostics reported at end of input.
type Location struct {
	Line   int
	Column int
	Lexeme string
	AtEnd  bool
}

// At builds a location from a token.
func At(tok token.Token) Location {
	return Location{
		Line:   tok.Line,
		Column: tok.Column,
		Lexeme: tok.Lexeme,
		AtEnd:  tok.Kind == token.EOF,
	}
}

// AtPos builds a token-less location.
func AtPos(pos token.Position) Location {
	return Location{Line: pos.Line, Column: pos.Column}
}

// Diagnostic is one detected problem. Values are never mutated after creation.
type Diagnostic struct {
	Code     Code
	Stage    Stage
	Message  string
	Location Location
}

// New constructs a diagnostic whose stage is taken from the registry.
func New(code Code, loc Location, message string) Diagnostic {
	if message == "" {
		message = code.DefaultMessage()
	}
	return Diagnostic{
		Code:     code,
		Stage:    code.Stage(),
		Message:  message,
		Location: loc,
	}
}

// Newf is New with a formatted message.
func Newf(code Code, loc Location, format string, args ...any) Diagnostic {
	return New(code, loc, fmt.Sprintf(format, args...))
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s %s: %s", d.Code, d.Stage, d.Message)
}

// List accumulates diagnostics for one run.
type List []Diagnostic

// Add appends a diagnostic.
func (l *List) Add(d Diagnostic) {
	*l = append(*l, d)
}

// HasErrors reports whether the list is non-empty.
func (l List) HasErrors() bool {
	return len(l) > 0
}

// HasStage reports whether any diagnostic belongs to the stage.
func (l List) HasStage(stage Stage) bool {
	for _, d := range l {
		if d.Stage == stage {
			return true
		}
	}
	return false
}

// Earliest returns the diagnostic from the earliest pipeline stage, keeping
// source order among diagnostics of the same stage.
func (l List) Earliest() (Diagnostic, bool) {
	if len(l) == 0 {
		return Diagnostic{}, false
	}
	best := l[0]
	for _, d := range l[1:] {
		if d.Stage < best.Stage {
			best = d
		}
	}
	return best, true
}
