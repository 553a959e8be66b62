package engine

import (
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// NewLogger returns a structured logger that writes pterm-formatted lines to w
func NewLogger(w io.Writer, level pterm.LogLevel) *slog.Logger {
	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(level)
	return slog.New(pterm.NewSlogHandler(logger))
}

func discardLogger() *slog.Logger {
	return NewLogger(io.Discard, pterm.LogLevelDisabled)
}
