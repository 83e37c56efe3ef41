package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
log:
  level: info
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, 0, cfg.Pipeline.MaxWorkers)
	assert.True(t, cfg.Pipeline.TrussEnabled)
	assert.False(t, cfg.Pipeline.Dedup)
	assert.Equal(t, 4096, cfg.Pipeline.ChunkSize)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_CustomValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
pipeline:
  max_workers: 16
  truss_enabled: false
  dedup: true
  chunk_size: 1024
log:
  level: debug
  format: json
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Pipeline.MaxWorkers)
	assert.False(t, cfg.Pipeline.TrussEnabled)
	assert.True(t, cfg.Pipeline.Dedup)
	assert.Equal(t, 1024, cfg.Pipeline.ChunkSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
log:
  format: xml
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	_, err = Load(configFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

func TestLoad_InvalidChunkSize(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
pipeline:
  chunk_size: 0
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	_, err = Load(configFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chunk_size")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Pipeline.TrussEnabled)
}

func TestLoadFromReader(t *testing.T) {
	content := []byte(`
pipeline:
  max_workers: 4
log:
  format: json
`)
	cfg, err := LoadFromReader("yaml", content)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Pipeline.MaxWorkers)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestConfig_EnvironmentVariablesAreIgnored(t *testing.T) {
	t.Setenv("PIPELINE_MAX_WORKERS", "99")

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("pipeline:\n  max_workers: 2\n"), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Pipeline.MaxWorkers, "environment variables must never override the config file")
}
