// Package obs contains observability utilities such as logging.
package obs

import (
	"log/slog"
	"os"
)

// NewLogger builds the JSON logger used across the app. It writes to stderr
// so log lines never interleave with the interactive menu output on stdout.
func NewLogger(level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
