// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
)

// NewLogger creates a structured logger writing to w. Production uses JSON
// format at Info level, everything else human-readable text at Debug. The
// writer is the caller's choice so log lines never mix with pairing codes
// printed on stdout.
func NewLogger(w io.Writer, env string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything. Useful in tests that do
// not assert on log output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
