package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"wpb/internal/domain"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		verbosity domain.Verbosity
		expected  slog.Level
	}{
		{domain.VerbosityQuiet, slog.LevelWarn},
		{domain.VerbosityNormal, slog.LevelInfo},
		{domain.VerbosityVerbose, slog.LevelInfo},
		{domain.VerbosityVeryVerbose, slog.LevelDebug},
		{domain.VerbosityDebugVerbose, slog.LevelDebug},
		{domain.VerbosityDebug, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.verbosity.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Level(tt.verbosity))
		})
	}
}

func TestNew(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logger := New(&buf, domain.VerbosityNormal)

	logger.Debug("hidden")
	logger.Info("wp-cli command", "command", "core version")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `msg="wp-cli command" command="core version"`)
	assert.Same(t, logger, slog.Default())
}
