package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./exports", cfg.Export.OutputDir)
	assert.Equal(t, 4, cfg.Export.MaxConcurrency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EXPORT_OUTPUT_DIR", "/tmp/artifacts")
	t.Setenv("EXPORT_MAX_CONCURRENCY", "8")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/artifacts", cfg.Export.OutputDir)
	assert.Equal(t, 8, cfg.Export.MaxConcurrency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_InvalidConcurrency(t *testing.T) {
	t.Setenv("EXPORT_MAX_CONCURRENCY", "0")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	// .envファイルが存在しなくてもエラーにならない（環境変数のみで動作可能）
	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("EXPORT_MAX_CONCURRENCY", "many")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Export.MaxConcurrency)
}
