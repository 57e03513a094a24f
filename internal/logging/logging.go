package logging

import (
	"io"
	"log/slog"

	"wpb/internal/domain"
)

// Level returns the slog level matching the console verbosity
func Level(v domain.Verbosity) slog.Level {
	switch {
	case v == domain.VerbosityQuiet:
		return slog.LevelWarn
	case v == domain.VerbosityDebug, v >= domain.VerbosityVeryVerbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w at the level matching v.
// It is also made the default slog logger.
func New(w io.Writer, v domain.Verbosity) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level(v)}))
	slog.SetDefault(logger)
	return logger
}

// Discard returns a logger dropping every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
