// Package compiler wires the parser, validator, layout engine and
// emitter into the single parse -> validate -> emit pipeline (spec §2,
// §5). It is the only package callers outside dsl/ need to import: a
// thin CLI, a test harness, or an embedding service all go through
// Compile.
package compiler

import (
	"procdsl/src/core/config"
	"procdsl/src/core/logger"
	"procdsl/src/core/types"
	"procdsl/src/dsl/ast"
	"procdsl/src/dsl/emit"
	"procdsl/src/dsl/parser"
	"procdsl/src/dsl/validate"
	"procdsl/src/openapi"
)

// Result is the outcome of one Compile call. XML is populated only when
// emission actually ran; Emitted reports whether it did, so a caller
// can distinguish "validation reported only warnings, emission held
// back by configuration" from "validation failed outright."
type Result struct {
	Process *ast.Process
	Report  *validate.Report
	XML     []byte
	Emitted bool
}

// Component wraps the compiler pipeline with the same lifecycle shape
// the rest of this codebase uses: a config-and-logger-holding struct
// constructed once and reused across calls.
type Component struct {
	cfg *config.Config
	log logger.ComponentLogger
}

// NewComponent constructs a compiler Component. A nil cfg falls back to
// config.Default().
func NewComponent(cfg *config.Config) *Component {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Component{
		cfg: cfg,
		log: logger.NewComponentLogger("compiler"),
	}
}

// Compile runs the parse -> validate -> emit pipeline over source text
// with no file-based context: no sidecar lookup, no ProcessEntity
// entityModel header population (sidecar is left empty).
func (c *Component) Compile(source string) (*Result, error) {
	return c.compile(source, "")
}

// CompileFile runs the same pipeline as Compile, additionally verifying
// that a sidecar OpenAPI document exists alongside sourcePath before
// parsing begins (spec §4.1, §6).
func (c *Component) CompileFile(source, sourcePath string) (*Result, error) {
	sidecarPath, err := openapi.Locate(sourcePath)
	if err != nil {
		c.log.Warn("sidecar OpenAPI document not found", logger.String("source", sourcePath))
		return nil, err
	}
	return c.compile(source, sidecarPath)
}

func (c *Component) compile(source, sidecarPath string) (*Result, error) {
	proc, parseErrs := parser.Parse(source)
	if len(parseErrs) > 0 {
		c.log.Debug("parse failed", logger.Int("error_count", len(parseErrs)))
		return nil, parseErrs
	}

	var sidecar *openapi.Sidecar
	if sidecarPath != "" {
		loaded, err := openapi.LoadPath(sidecarPath)
		if err != nil {
			c.log.Warn("failed to read sidecar OpenAPI document", logger.String("path", sidecarPath), logger.Err(err))
		} else {
			sidecar = loaded
		}
	}

	report := validate.Validate(proc, c.cfg.Compiler.StrictMode, sidecar)
	result := &Result{Process: proc, Report: report}

	if report.HasErrors() {
		c.log.Debug("validation failed", logger.Int("error_count", len(report.Errors)))
		return result, firstAsError(report)
	}
	if len(report.Warnings) > 0 && !c.cfg.Compiler.EmitOnWarnings {
		c.log.Debug("emission held back by warnings", logger.Int("warning_count", len(report.Warnings)))
		return result, nil
	}

	emitted, err := emit.Emit(proc, emit.Options{
		Sidecar:         sidecarPath,
		Exporter:        c.cfg.InstanceName,
		ExporterVersion: "1",
		Layout:          &c.cfg.Layout,
	})
	if err != nil {
		return result, types.WrapError(err, types.ErrorTypeIO, types.ErrorCodeIO, "emission failed")
	}

	result.XML = emitted.XML
	result.Emitted = true
	return result, nil
}

// firstAsError surfaces the report's first error as the returned error
// value, for callers that only care whether Compile succeeded; the full
// diagnostic set remains available on Result.Report.
func firstAsError(report *validate.Report) error {
	if len(report.Errors) == 0 {
		return nil
	}
	d := report.Errors[0]
	return types.NewSemanticError(d.Code, d.ElementID, d.Message)
}
