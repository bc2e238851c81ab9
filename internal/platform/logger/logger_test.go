package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/taskbook-api/internal/config"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, slog.LevelWarn)

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
	assert.Equal(t, "WARN", entries[0]["level"])
}

func TestSetupInstallsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l := logger.Setup(config.ServerConfig{LogLevel: "debug"})
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))

	l = logger.Setup(config.ServerConfig{LogLevel: "nonsense"})
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
}

func TestContextLogger(t *testing.T) {
	scoped, buf := logger.GetTestLogger(t)
	fallback, _ := logger.GetTestLogger(t)

	t.Run("empty context uses fallback", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("stored logger wins", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), scoped.With("trace_id", "abc"))
		logger.FromContextOrDefault(ctx, fallback).Info("hello")

		logger.AssertLogContains(t, buf, `"trace_id":"abc"`)
		logger.AssertLogNotContains(t, buf, "password")
	})
}
