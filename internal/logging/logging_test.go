package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "govocab.log")

	logger, cleanup, err := Setup(logFile, slog.LevelInfo)
	require.NoError(t, err)

	logger.Info("catalog ready", "lessons", 8)
	cleanup()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	line := string(data)
	assert.Contains(t, line, `"msg":"catalog ready"`)
	assert.Contains(t, line, `"lessons":8`)
	assert.True(t, strings.HasPrefix(line, "{"), "expected JSONL output")
}

func TestSetupRespectsLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "govocab.log")

	logger, cleanup, err := Setup(logFile, slog.LevelWarn)
	require.NoError(t, err)

	logger.Debug("should be dropped")
	logger.Warn("should be kept")
	cleanup()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "should be dropped")
	assert.Contains(t, string(data), "should be kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"Error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
