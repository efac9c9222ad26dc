package driver

import (
	"errors"
	"fmt"

	"github.com/lpahlavi/jlox/pkg/diag"
)

// ExitPolicy maps the stage of the earliest diagnostic to a process exit
// status.
type ExitPolicy struct {
	Lexical    int `yaml:"lexical" toml:"lexical"`
	Syntax     int `yaml:"syntax" toml:"syntax"`
	Resolution int `yaml:"resolution" toml:"resolution"`
	Runtime    int `yaml:"runtime" toml:"runtime"`
}

// DefaultExitPolicy uses EX_DATAERR for static problems and EX_SOFTWARE for
// runtime failures.
func DefaultExitPolicy() ExitPolicy {
	return ExitPolicy{
		Lexical:    diag.ExitDataErr,
		Syntax:     diag.ExitDataErr,
		Resolution: diag.ExitDataErr,
		Runtime:    diag.ExitSoftware,
	}
}

// Code returns ExitOK for an empty list.
func (p ExitPolicy) Code(diags diag.List) int {
	first, ok := diags.Earliest()
	if !ok {
		return diag.ExitOK
	}
	switch first.Stage {
	case diag.StageLexical:
		return p.Lexical
	case diag.StageSyntax:
		return p.Syntax
	case diag.StageResolution:
		return p.Resolution
	default:
		return p.Runtime
	}
}

// Validate requires every status to be a non-zero byte.
func (p ExitPolicy) Validate() error {
	var errs []error
	check := func(name string, code int) {
		if code < 1 || code > 255 {
			errs = append(errs, fmt.Errorf("exit_codes.%s must be in 1..255, got %d", name, code))
		}
	}
	check("lexical", p.Lexical)
	check("syntax", p.Syntax)
	check("resolution", p.Resolution)
	check("runtime", p.Runtime)
	return errors.Join(errs...)
}
