package log

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/airdate/internal/config"
)

func TestSetupLogger_LevelNames(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"chatty":  slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestSetupLogger_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "airdate.log")

	logger, closer, err := SetupLogger(&config.LoggingConfig{File: path, Level: "WARN"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "releases", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry), "exactly one JSON line")
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, float64(3), entry["releases"])
}

func TestSetupLogger_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := SetupLogger(&config.LoggingConfig{})
	require.NoError(t, err)
	logger.Error("nowhere")
	assert.NoError(t, closer.Close())
}
