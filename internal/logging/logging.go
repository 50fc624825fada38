// Package logging builds the slog handler used by the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Level names accepted by ParseLevel.
const (
	LevelQuiet   = "quiet"
	LevelNormal  = "normal"
	LevelVerbose = "verbose"
)

// NewTerminalHandler returns a tinted handler writing to w. Colour is only
// enabled when w is a terminal.
func NewTerminalHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	})
}

// New returns a logger for the CLI at the given verbosity.
func New(w io.Writer, verbosity string) *slog.Logger {
	return slog.New(NewTerminalHandler(w, ParseLevel(verbosity)))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a verbosity name to a slog level. Unknown names map to Info.
func ParseLevel(verbosity string) slog.Level {
	switch verbosity {
	case LevelQuiet:
		return slog.LevelWarn
	case LevelVerbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
