package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.input))
	}
}

func TestInit(t *testing.T) {
	Init(slog.LevelDebug)
	require.True(t, L().Enabled(context.Background(), slog.LevelDebug))

	Debug("test message")
	Info("test message", "module", "logger")
	Warn("test message")
	Error("test message")
	ErrorContext(context.Background(), "test message")
	With("module", "logger").Info("child logger")

	Init(slog.LevelWarn)
	require.False(t, L().Enabled(context.Background(), slog.LevelInfo))
}
