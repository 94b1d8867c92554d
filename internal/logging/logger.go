// Package logging builds the process logger. The terminal belongs to the UI,
// so records go to a rolling file through a charmbracelet/log handler.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Path       string // empty discards all output
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a slog.Logger writing to the rolling file at cfg.Path.
// The returned Closer releases the file.
func New(cfg Config) (*slog.Logger, io.Closer) {
	if cfg.Path == "" {
		return NewWithWriter(cfg, io.Discard), nopCloser{}
	}
	w := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return NewWithWriter(cfg, w), w
}

// NewWithWriter creates a slog.Logger writing logfmt-style lines to w.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           parseLevel(cfg.Level),
		ReportTimestamp: true,
		Prefix:          "quotepage",
		Formatter:       log.LogfmtFormatter,
	})
	return slog.New(handler)
}

// parseLevel converts a string log level, defaulting to info.
func parseLevel(level string) log.Level {
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
