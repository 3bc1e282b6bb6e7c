package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, "2025-04-01", cfg.Dataset.StartDate)
	assert.Equal(t, 3, cfg.Dataset.Replicas)
	assert.Zero(t, cfg.Dataset.Seed)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Metrics.Enabled)

	start, err := cfg.Dataset.Start()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: "127.0.0.1:9000"
  shutdown_timeout: 3s
store:
  path: /tmp/faredash
dataset:
  seed: 42
  replicas: 5
logger:
  level: debug
  format: text
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "/tmp/faredash", cfg.Store.Path)
	assert.Equal(t, uint64(42), cfg.Dataset.Seed)
	assert.Equal(t, 5, cfg.Dataset.Replicas)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "text", cfg.Logger.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FAREDASH_HTTP_ADDR", ":7070")
	t.Setenv("FAREDASH_DATASET_SEED", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, uint64(7), cfg.Dataset.Seed)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad start date", content: "dataset:\n  start_date: April\n"},
		{name: "zero replicas", content: "dataset:\n  replicas: 0\n"},
		{name: "bad log level", content: "logger:\n  level: loud\n"},
		{name: "empty addr", content: "http:\n  addr: \"\"\n"},
		{name: "file output without path", content: "logger:\n  output: file\n  file_path: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
