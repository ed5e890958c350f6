package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON logger writing to stdout.
//
// Parameters:
//   - level: the minimum level to emit, as accepted by ParseLevel (usually LOG_LEVEL)
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter is New with a custom destination. Tests pass a buffer to inspect the
// records a component writes.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name to a slog level. Matching ignores case and
// surrounding spaces.
//
// Returns:
//   - slog.LevelDebug for "debug"
//   - slog.LevelWarn for "warn" or "warning"
//   - slog.LevelError for "error"
//   - slog.LevelInfo for "info", an empty string or anything unrecognised
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
