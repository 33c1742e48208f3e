package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"procdsl/src/compiler"
	"procdsl/src/dsl/parser"
)

func newConvertCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "convert <file.bpm>",
		Short: "Compile a process definition into BPMN 2.0 XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], outputPath)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path for the emitted BPMN XML (default: <file> with .bpmn extension)")
	return cmd
}

func runConvert(sourcePath, outputPath string) error {
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
		if result != nil && result.Report != nil {
			renderReport(os.Stderr, result.Report)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return err
	}

	if result.Report != nil && len(result.Report.Warnings) > 0 {
		renderReport(os.Stderr, result.Report)
	}
	if !result.Emitted {
		fmt.Fprintln(os.Stderr, "emission held back: warnings present and emit-on-warnings is disabled")
		return nil
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(sourcePath)
	}
	if err := os.WriteFile(outputPath, result.XML, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		return err
	}

	fmt.Fprintf(os.Stdout, "wrote %s\n", outputPath)
	return nil
}

func defaultOutputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	base := strings.TrimSuffix(sourcePath, ext)
	return base + ".bpmn"
}
