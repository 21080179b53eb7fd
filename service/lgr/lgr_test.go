package lgr

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdobak/go-xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

func TestFileHandlerRendersErrorTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newFileHandler(&buf, slog.LevelInfo))

	logger.Error("webhook failed", slog.Any("error", xerrors.New("connection refused")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	errGroup, ok := rec["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "connection refused", errGroup["msg"])
	assert.NotEmpty(t, errGroup["trace"])
}

func TestFileHandlerPlainError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newFileHandler(&buf, slog.LevelInfo))

	logger.Warn("store failed", slog.Any("error", errors.New("disk full")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	errGroup := rec["error"].(map[string]any)
	assert.Equal(t, "disk full", errGroup["msg"])
	assert.NotContains(t, errGroup, "trace")
}

func TestSetupWritesLogFile(t *testing.T) {
	prev := Logger
	defer func() {
		Logger = prev
		slog.SetDefault(prev)
	}()

	file := filepath.Join(t.TempDir(), "potholes.log")
	logger := Setup("debug", file)
	logger.Debug("hello", slog.String("k", "v"))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
	assert.Contains(t, string(b), `"k":"v"`)
}
