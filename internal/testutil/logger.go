// Package testutil holds small helpers shared across test packages.
package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything, for tests that
// construct controllers directly.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
