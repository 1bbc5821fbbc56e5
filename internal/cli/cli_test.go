package cli

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFlag(t *testing.T) {
	var l LogLevelFlag
	require.NoError(t, l.Set("debug"))
	assert.Equal(t, slog.LevelDebug, l.Value)
	assert.Equal(t, "DEBUG", l.String())
	require.NoError(t, l.Set("ERROR"))
	assert.Equal(t, slog.LevelError, l.Value)
	assert.Error(t, l.Set("verbose"))
	assert.Equal(t, slog.LevelError, l.Value)
}

func TestLogFlagsRegister(t *testing.T) {
	var f LogFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	assert.Equal(t, slog.LevelWarn, f.Level.Value)

	p := filepath.Join(t.TempDir(), "tool.log")
	require.NoError(t, fs.Parse([]string{"-loglevel", "info", "-logfile", p}))
	assert.Equal(t, slog.LevelInfo, f.Level.Value)

	logger := f.Logger()
	t.Cleanup(func() { f.Close() })
	logger.Info("hello", "sectors", 3)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "sectors=3")
}

func TestLogFlagsCloseWithoutFile(t *testing.T) {
	var f LogFlags
	f.Logger()
	assert.NoError(t, f.Close())
}

func TestNewLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
