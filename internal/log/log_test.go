package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSetupPlain(t *testing.T) {
	var buf bytes.Buffer
	logger, closers, err := setup(&buf, false, "info", "")
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("hidden")
	logger.Info("converted", "cols", 78)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=converted cols=78")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestSetupColor(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := setup(&buf, true, "debug", "")
	require.NoError(t, err)

	logger.With("path", "a.png").Warn("slow", "took", "2s")

	out := buf.String()
	assert.Contains(t, out, "\x1b[33m WARN\x1b[0m slow")
	assert.Contains(t, out, "path=a.png took=2s")
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rascii.log")

	var buf bytes.Buffer
	logger, closers, err := setup(&buf, false, "warn", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Info("skipped")
	logger.Error("failed", "error", "boom")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=failed error=boom")
	assert.NotContains(t, string(data), "skipped")
	assert.Contains(t, buf.String(), "msg=failed")
}
