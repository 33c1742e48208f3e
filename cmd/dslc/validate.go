package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procdsl/src/compiler"
	"procdsl/src/dsl/parser"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.bpm>",
		Short: "Parse and validate a process definition without emitting BPMN XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(sourcePath string) error {
	cfg := loadConfig()
	initLogger(cfg)

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	comp := compiler.NewComponent(cfg)
	result, err := comp.CompileFile(string(source), sourcePath)
	if err != nil {
		if errs, ok := err.(parser.ErrorList); ok {
			renderParseErrors(os.Stderr, errs)
			return err
		}
		if result == nil || result.Report == nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return err
		}
	}

	if result.Report == nil || len(result.Report.All()) == 0 {
		fmt.Fprintln(os.Stdout, "ok: no diagnostics")
		return nil
	}

	renderReport(os.Stdout, result.Report)
	if result.Report.HasErrors() {
		return &diagnosticsFailed{count: len(result.Report.Errors)}
	}
	return nil
}
