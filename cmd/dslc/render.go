package main

import (
	"fmt"
	"io"

	"procdsl/src/core/types"
	"procdsl/src/dsl/validate"
)

// renderParseErrors prints one line per accumulated syntax error, in the
// same line:column-anchored shape the parser's own CoreError.Error()
// produces (spec §7).
func renderParseErrors(w io.Writer, errs []*types.CoreError) {
	for _, e := range errs {
		fmt.Fprintln(w, e.Error())
	}
}

// renderReport prints every diagnostic in a validate.Report, errors
// first, one per line, in the same severity/rule/element shape
// Diagnostic.String() produces.
func renderReport(w io.Writer, report *validate.Report) {
	for _, d := range report.All() {
		fmt.Fprintln(w, d.String())
	}
}
