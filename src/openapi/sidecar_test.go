package openapi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procdsl/src/core/types"
	"procdsl/src/openapi"
)

func TestLocate_FindsYamlExtension(t *testing.T) {
	dir := t.TempDir()
	bpmPath := filepath.Join(dir, "order.bpm")
	sidecarPath := filepath.Join(dir, "order.yaml")
	require.NoError(t, os.WriteFile(sidecarPath, []byte("components:\n  schemas: {}\n"), 0o644))

	found, err := openapi.Locate(bpmPath)
	require.NoError(t, err)
	assert.Equal(t, sidecarPath, found)
}

func TestLocate_FindsYmlExtension(t *testing.T) {
	dir := t.TempDir()
	bpmPath := filepath.Join(dir, "order.bpm")
	sidecarPath := filepath.Join(dir, "order.yml")
	require.NoError(t, os.WriteFile(sidecarPath, []byte("components:\n  schemas: {}\n"), 0o644))

	found, err := openapi.Locate(bpmPath)
	require.NoError(t, err)
	assert.Equal(t, sidecarPath, found)
}

func TestLocate_MissingReturnsIOError(t *testing.T) {
	dir := t.TempDir()
	bpmPath := filepath.Join(dir, "order.bpm")

	_, err := openapi.Locate(bpmPath)
	require.Error(t, err)
	coreErr, ok := err.(*types.CoreError)
	require.True(t, ok)
	assert.Equal(t, types.ErrorTypeIO, coreErr.Type)
	assert.Equal(t, types.ErrorCodeMissingOpenAPI, coreErr.Code)
}

func TestLoad_ExtractsSchemaNames(t *testing.T) {
	dir := t.TempDir()
	bpmPath := filepath.Join(dir, "order.bpm")
	sidecarPath := filepath.Join(dir, "order.yaml")
	doc := "components:\n  schemas:\n    Customer:\n      type: object\n    Order:\n      type: object\n"
	require.NoError(t, os.WriteFile(sidecarPath, []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(bpmPath, []byte("process \"Order\" {}"), 0o644))

	sidecar, err := openapi.Load(bpmPath)
	require.NoError(t, err)
	assert.True(t, sidecar.HasSchema("Customer"))
	assert.True(t, sidecar.HasSchema("Order"))
	assert.False(t, sidecar.HasSchema("Invoice"))
}

func TestLoadPath_ReadsAlreadyResolvedPathDirectly(t *testing.T) {
	dir := t.TempDir()
	sidecarPath := filepath.Join(dir, "weird-name.yaml")
	doc := "components:\n  schemas:\n    Thing:\n      type: object\n"
	require.NoError(t, os.WriteFile(sidecarPath, []byte(doc), 0o644))

	sidecar, err := openapi.LoadPath(sidecarPath)
	require.NoError(t, err)
	assert.Equal(t, sidecarPath, sidecar.Path)
	assert.True(t, sidecar.HasSchema("Thing"))
}

func TestLoadPath_MissingFileIsIOError(t *testing.T) {
	dir := t.TempDir()
	_, err := openapi.LoadPath(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	coreErr, ok := err.(*types.CoreError)
	require.True(t, ok)
	assert.Equal(t, types.ErrorTypeIO, coreErr.Type)
}

func TestLoad_EmptySchemasYieldsNoSchemas(t *testing.T) {
	dir := t.TempDir()
	bpmPath := filepath.Join(dir, "bare.bpm")
	sidecarPath := filepath.Join(dir, "bare.yaml")
	require.NoError(t, os.WriteFile(sidecarPath, []byte("openapi: 3.0.0\n"), 0o644))

	sidecar, err := openapi.Load(bpmPath)
	require.NoError(t, err)
	assert.False(t, sidecar.HasSchema("Anything"))
}
