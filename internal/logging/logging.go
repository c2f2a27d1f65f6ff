// Package logging builds the charmbracelet/log loggers used across the app.
// The terminal belongs to the screen renderer while the program runs, so the
// default destination is a file, or nothing at all.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds logger configuration.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options an interactive run uses.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		Prefix:          "todoapp",
	}
}

// New creates a logger writing to w with the given options.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything. Used whenever no log file
// is configured.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ToFile appends to the file at path and builds a logger on it. The caller
// owns the returned closer.
func ToFile(path string, opts Options) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, opts), f, nil
}

// ParseLevel maps a configured level name to a charmbracelet/log Level.
// Unknown names fall back to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
