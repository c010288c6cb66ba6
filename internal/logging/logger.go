// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string

	// Format is json or console.
	// Default: json
	Format string

	// Caller includes file:line in each entry.
	Caller bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
		Output: os.Stderr,
	}
}

var (
	global zerolog.Logger
	mu     sync.RWMutex
)

//nolint:gochecknoinits // logging must work before Init is called from main
func init() {
	configure(DefaultConfig())
}

// Init replaces the global logger. Safe to call more than once.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	configure(cfg)
}

// configure builds the global logger. Caller holds mu.
func configure(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	var out io.Writer = cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	zctx := zerolog.New(out).With().Timestamp().Str("service", "labstock")
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	global = zctx.Logger()
}

// parseLevel maps a level name to zerolog.Level. Unknown names map to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetLogger replaces the global logger, typically with one from NewTestLogger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// Debug starts a new message with debug level.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts a new message with info level.
//
//	logging.Info().Int("port", 8000).Msg("HTTP server listening")
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a new message with warning level.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts a new message with error level.
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal logs and then calls os.Exit(1).
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

// Err starts an error level message carrying err.
//
//	logging.Err(err).Msg("Mongo ping failed")
func Err(err error) *zerolog.Event {
	l := Logger()
	return l.Err(err)
}

// WithComponent returns a child logger tagged with a component field.
//
//	log := logging.WithComponent("llm")
func WithComponent(component string) zerolog.Logger {
	l := Logger()
	return l.With().Str("component", component).Logger()
}

// NewTestLogger creates a JSON logger writing to w, for capturing output in tests.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
