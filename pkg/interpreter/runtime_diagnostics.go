package interpreter

import (
	"fmt"

	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/token"
)

// RuntimeError carries the diagnostic for a failed evaluation up to the
// top-level statement that started it.
type RuntimeError struct {
	Diagnostic diag.Diagnostic
}

func (e *RuntimeError) Error() string {
	return e.Diagnostic.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.Diagnostic
}

func runtimeError(code diag.Code, tok token.Token, format string, args ...any) error {
	message := ""
	if format != "" {
		message = fmt.Sprintf(format, args...)
	}
	return &RuntimeError{Diagnostic: diag.New(code, diag.At(tok), message)}
}
