package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: "info", Format: "json"})

	l.Debug("hidden")
	l.Info("dataset generated", "records", 30)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dataset generated", entry["msg"])
	assert.Equal(t, float64(30), entry["records"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: "debug", Format: "text"})
	l.Debug("render", "tab", "Overview")
	assert.Contains(t, buf.String(), "tab=Overview")
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	old := Get()
	t.Cleanup(func() { Set(old) })
	Set(New(&buf, Config{Format: "text"}))

	ctx := ContextWithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestID(ctx))
	WithContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-123")

	assert.Equal(t, "", RequestID(context.Background()))
}

func TestInitFileOutput(t *testing.T) {
	old := Get()
	t.Cleanup(func() { Set(old) })

	path := filepath.Join(t.TempDir(), "logs", "faredash.log")
	require.NoError(t, Init(Config{Output: "file", FilePath: path, Format: "json"}))
	Get().Info("to file")
	assert.FileExists(t, path)
}

func TestInitFileOutputRequiresPath(t *testing.T) {
	assert.Error(t, Init(Config{Output: "file"}))
}
