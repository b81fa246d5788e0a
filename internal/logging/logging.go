// SPDX-License-Identifier: MPL-2.0

// Package logging configures the process-wide structured logger.
//
// Records go through log/slog so library packages stay decoupled from the
// backend; the handler is a charmbracelet/log logger writing to stderr.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/invowk/modrun/internal/config"
)

// Prefix is printed in front of every text record.
const Prefix = "modrun"

// New builds an slog.Logger backed by charmbracelet/log. verbose forces the
// debug level regardless of cfg.Level. args are attached to every record.
func New(w io.Writer, cfg config.LogConfig, verbose bool, args ...any) *slog.Logger {
	// charmbracelet/log levels share slog's numeric values.
	level := log.Level(cfg.Level.Slog())
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix:    Prefix,
		Level:     level,
		Formatter: formatter(cfg.Format),
	})
	logger := slog.New(handler)
	if len(args) > 0 {
		logger = logger.With(args...)
	}
	return logger
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(w io.Writer, cfg config.LogConfig, verbose bool, args ...any) *slog.Logger {
	logger := New(w, cfg, verbose, args...)
	slog.SetDefault(logger)
	return logger
}

func formatter(f config.LogFormat) log.Formatter {
	switch f {
	case config.LogFormatJSON:
		return log.JSONFormatter
	case config.LogFormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
