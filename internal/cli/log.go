// Package cli holds the pieces of the carbonviz command that are not cobra
// wiring: logging setup, filter and tasks files, codec measurement and
// colored text rendering.
package cli

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogging configures the default slog logger from the verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler.
func SetupLogging(verbose, quiet bool) {
	slog.SetDefault(NewLogger(os.Stderr, verbose, quiet))
}

// NewLogger builds the text logger SetupLogging installs, writing to w.
func NewLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
