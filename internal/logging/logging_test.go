package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterSplitsByLevel(t *testing.T) {
	var stdout, stderr, file bytes.Buffer
	logger := slog.New(newRouter(slog.LevelInfo, &stdout, &stderr, &file, false))

	logger.Debug("hidden")
	logger.Info("item assigned", "item", "Cloak")
	logger.Error("something broke")

	assert.Contains(t, stdout.String(), "item assigned")
	assert.Contains(t, stdout.String(), "item=Cloak")
	assert.NotContains(t, stdout.String(), "something broke")
	assert.Contains(t, stderr.String(), "something broke")
	assert.NotContains(t, stderr.String(), "item assigned")

	assert.Contains(t, file.String(), "item assigned")
	assert.Contains(t, file.String(), "something broke")
	assert.NotContains(t, file.String(), "hidden")
}

func TestRouterWithAttrsReachesAllSinks(t *testing.T) {
	var stdout, stderr, file bytes.Buffer
	logger := slog.New(newRouter(slog.LevelInfo, &stdout, &stderr, &file, false)).With("request_id", "abc")

	logger.Warn("slow request")
	logger.Error("failed request")

	assert.Contains(t, stdout.String(), "request_id=abc")
	assert.Contains(t, stderr.String(), "request_id=abc")
	assert.Contains(t, file.String(), "request_id=abc")
}

func TestSetupWritesLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "shramba.log")
	cleanup, err := Setup(slog.LevelInfo, path)
	require.NoError(t, err)

	slog.Warn("written to file")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
