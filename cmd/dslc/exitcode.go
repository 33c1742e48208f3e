package main

import (
	"fmt"

	"procdsl/src/core/types"
	"procdsl/src/dsl/parser"
)

// Exit codes (spec §6): 0 success, 1 a diagnostic (syntax, semantic,
// engine-compat) was reported, 2 everything else (I/O, config, internal).
const (
	exitOK          = 0
	exitDiagnostic  = 1
	exitOperational = 2
)

// diagnosticsFailed signals that validate found at least one error-level
// diagnostic; it carries no message of its own because the diagnostics
// were already printed to stdout by the time it's returned.
type diagnosticsFailed struct{ count int }

func (e *diagnosticsFailed) Error() string {
	return fmt.Sprintf("validation failed with %d error(s)", e.count)
}

func exitCodeFor(err error) int {
	switch e := err.(type) {
	case parser.ErrorList:
		return exitDiagnostic
	case *diagnosticsFailed:
		return exitDiagnostic
	case *types.CoreError:
		if e.Type == types.ErrorTypeIO {
			return exitOperational
		}
		return exitDiagnostic
	default:
		return exitOperational
	}
}
