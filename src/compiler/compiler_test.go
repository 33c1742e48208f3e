package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procdsl/src/compiler"
	"procdsl/src/core/config"
)

const minimalSource = `
process "Minimal" {
  id: "minimal"
  version: "1.0"

  start "Start" { id: "start" }
  end "End" { id: "end" }

  flow {
    "start" -> "end"
  }
}
`

func TestCompile_MinimalPipeline(t *testing.T) {
	c := compiler.NewComponent(nil)
	result, err := c.Compile(minimalSource)
	require.NoError(t, err)
	assert.True(t, result.Emitted)
	assert.False(t, result.Report.HasErrors())
	assert.Contains(t, string(result.XML), `id="minimal"`)
}

func TestCompile_ScriptTaskWithMappings(t *testing.T) {
	src := `
process "Calc" {
  id: "calc"
  start "Start" { id: "start" }
  scriptCall "Sum" {
    id: "sum"
    script: "a+b"
    input_mappings: [ {source: "a", target: "x"} ]
    output_mappings: [ {source: "x", target: "out"} ]
  }
  end "End" { id: "end" }
  flow { "start" -> "sum" "sum" -> "end" }
}
`
	c := compiler.NewComponent(nil)
	result, err := c.Compile(src)
	require.NoError(t, err)
	assert.True(t, result.Emitted)
	assert.Contains(t, string(result.XML), `<scriptTask id="sum"`)
}

func TestCompile_XorGatewayWithDefaultBranch(t *testing.T) {
	src := `
process "Branch" {
  id: "branch"
  start "Start" { id: "start" }
  xorGateway "Check" { id: "check" }
  end "EndA" { id: "enda" }
  end "EndB" { id: "endb" }
  flow {
    "start" -> "check"
    "check" -> "enda" ["condition": "=x = 1"]
    "check" -> "endb"
  }
}
`
	c := compiler.NewComponent(nil)
	result, err := c.Compile(src)
	require.NoError(t, err)
	assert.True(t, result.Emitted)
	assert.Contains(t, string(result.XML), `default="flow_check_to_endb"`)
}

func TestCompile_ProcessEntityExpansion(t *testing.T) {
	src := `
process "Entity" {
  id: "entity"
  start "Start" { id: "start" }
  processEntity "Load Customer" { entityName: "Customer" }
  end "End" { id: "end" }
  flow { "start" -> "load-customer" "load-customer" -> "end" }
}
`
	c := compiler.NewComponent(nil)
	result, err := c.Compile(src)
	require.NoError(t, err)
	assert.True(t, result.Emitted)
	out := string(result.XML)
	assert.Contains(t, out, `id="load-customer-validation-gateway"`)
	assert.Contains(t, out, `errorEventDefinition`)
}

func TestCompileFile_MissingSidecarIsIOError(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "order.bpm")
	require.NoError(t, os.WriteFile(sourcePath, []byte(minimalSource), 0o644))

	c := compiler.NewComponent(nil)
	result, err := c.CompileFile(minimalSource, sourcePath)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestCompileFile_WithSidecarPresent(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "order.bpm")
	sidecarPath := filepath.Join(dir, "order.yaml")
	require.NoError(t, os.WriteFile(sourcePath, []byte(minimalSource), 0o644))
	require.NoError(t, os.WriteFile(sidecarPath, []byte("components:\n  schemas: {}\n"), 0o644))

	c := compiler.NewComponent(nil)
	result, err := c.CompileFile(minimalSource, sourcePath)
	require.NoError(t, err)
	assert.True(t, result.Emitted)
}

func TestCompile_DuplicateIDErrorAccumulation(t *testing.T) {
	src := `
process "Bad" {
  id: "bad"
  start "Start" { id: "start" }
  start "Start Again" { id: "start" }
  end "End" { id: "end" }
  flow { "start" -> "end" }
}
`
	c := compiler.NewComponent(nil)
	result, err := c.Compile(src)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Emitted)
	assert.True(t, result.Report.HasErrors())
}

func TestCompile_StrictModeRejectsUnreachableElement(t *testing.T) {
	src := `
process "Orphan" {
  id: "orphan"
  start "Start" { id: "start" }
  end "End" { id: "end" }
  end "Unreachable" { id: "unreachable" }
  flow { "start" -> "end" }
}
`
	cfg := config.Default()
	cfg.Compiler.StrictMode = true
	c := compiler.NewComponent(cfg)
	result, err := c.Compile(src)
	require.Error(t, err)
	assert.False(t, result.Emitted)
}

func TestCompile_PermissiveModeEmitsDespiteWarningWhenEmitOnWarningsSet(t *testing.T) {
	src := `
process "Orphan" {
  id: "orphan"
  start "Start" { id: "start" }
  end "End" { id: "end" }
  end "Unreachable" { id: "unreachable" }
  flow { "start" -> "end" }
}
`
	cfg := config.Default()
	cfg.Compiler.StrictMode = false
	cfg.Compiler.EmitOnWarnings = true
	c := compiler.NewComponent(cfg)
	result, err := c.Compile(src)
	require.NoError(t, err)
	assert.True(t, result.Emitted)
	assert.NotEmpty(t, result.Report.Warnings)
}

func TestCompile_PermissiveModeWithoutEmitOnWarningsHoldsBackEmission(t *testing.T) {
	src := `
process "Orphan" {
  id: "orphan"
  start "Start" { id: "start" }
  end "End" { id: "end" }
  end "Unreachable" { id: "unreachable" }
  flow { "start" -> "end" }
}
`
	cfg := config.Default()
	cfg.Compiler.StrictMode = false
	cfg.Compiler.EmitOnWarnings = false
	c := compiler.NewComponent(cfg)
	result, err := c.Compile(src)
	require.NoError(t, err)
	assert.False(t, result.Emitted)
	assert.Nil(t, result.XML)
}

func TestCompile_SyntaxErrorReturnsNoResult(t *testing.T) {
	c := compiler.NewComponent(nil)
	result, err := c.Compile(`process "Broken" { id: "broken" start "Start" { id: "start"`)
	require.Error(t, err)
	assert.Nil(t, result)
}
