// Package openapi implements the compiler's narrow view of a sidecar
// OpenAPI document: whether one exists next to a .bpm source file, and
// which entity schema names it declares. The compiler never parses an
// OpenAPI document beyond that (spec §6) — no validation of the schemas
// themselves, no $ref resolution, no request/response modeling.
package openapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"procdsl/src/core/types"
)

// Sidecar is the narrow slice of an OpenAPI document the compiler cares
// about: the set of declared component schema names.
type Sidecar struct {
	Path        string
	SchemaNames map[string]bool
}

// HasSchema reports whether name is declared under components.schemas.
func (s *Sidecar) HasSchema(name string) bool {
	return s.SchemaNames[name]
}

// document is the minimal shape read out of the sidecar YAML; any
// other content is opaque to the compiler.
type document struct {
	Components struct {
		Schemas map[string]interface{} `yaml:"schemas"`
	} `yaml:"components"`
}

// Locate finds the sidecar OpenAPI file for a .bpm source path: same
// stem, same directory, extension .yaml or .yml. It returns a
// MissingOpenAPI IO error if neither exists.
func Locate(sourcePath string) (string, error) {
	dir := filepath.Dir(sourcePath)
	stem := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	for _, ext := range []string{".yaml", ".yml"} {
		candidate := filepath.Join(dir, stem+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", types.NewIOError(types.ErrorCodeMissingOpenAPI,
		fmt.Sprintf("no sidecar OpenAPI document found for %q (expected %s.yaml or %s.yml)", sourcePath, stem, stem)).
		WithDetails(stem)
}

// Load locates and reads the sidecar OpenAPI document for a .bpm
// source path.
func Load(sourcePath string) (*Sidecar, error) {
	path, err := Locate(sourcePath)
	if err != nil {
		return nil, err
	}
	return LoadPath(path)
}

// LoadPath reads a sidecar OpenAPI document from an already-resolved
// path, skipping the Locate step — for callers (like the compiler
// pipeline) that located the sidecar once and don't want to repeat the
// stem/extension guesswork against the sidecar's own path.
func LoadPath(path string) (*Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(err, types.ErrorTypeIO, types.ErrorCodeIO,
			fmt.Sprintf("cannot read sidecar OpenAPI document %q", path))
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.WrapError(err, types.ErrorTypeIO, types.ErrorCodeIO,
			fmt.Sprintf("cannot parse sidecar OpenAPI document %q", path))
	}

	names := make(map[string]bool, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names[name] = true
	}
	return &Sidecar{Path: path, SchemaNames: names}, nil
}
