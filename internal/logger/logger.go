// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// bootcamp-webapi application.
//
// Two loggers exist over the life of the process. The bootstrap logger built
// by [NewBootstrapLogger] is used only while configuration is resolved and
// the schema is migrated; the host then installs the production logger built
// by [NewLogger] and the bootstrap logger is dropped.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// bootstrap sinks, replaced in tests.
var (
	consoleSink io.Writer = os.Stdout
	debugSink   io.Writer = os.Stderr
)

func init() {
	// levels are filtered per logger
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "server", "bootstrap").
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format at Debug level; use
// [NewLoggerWithLevel] to pick the minimum severity.
func NewLogger(role string) *Logger {
	l, _ := NewLoggerWithLevel(role, zerolog.LevelDebugValue)
	return l
}

// NewLoggerWithLevel is [NewLogger] with an explicit minimum level. The level
// is parsed by [ParseLevel].
func NewLoggerWithLevel(role, minimumLevel string) (*Logger, error) {
	level, err := ParseLevel(minimumLevel)
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(os.Stdout).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}, nil
}

// NewBootstrapLogger builds the minimal logger used during startup. Every
// entry is written both to a human-readable console sink (stdout) and to a
// JSON debug/trace sink (stderr). Entries below minimumLevel are dropped.
//
// The returned error is fatal for the process: later stages assume they can
// log.
func NewBootstrapLogger(minimumLevel string) (*Logger, error) {
	level, err := ParseLevel(minimumLevel)
	if err != nil {
		return nil, fmt.Errorf("error building bootstrap logger: %w", err)
	}

	console := zerolog.ConsoleWriter{
		Out:        consoleSink,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	writer := zerolog.MultiLevelWriter(console, debugSink)

	logger := zerolog.New(writer).
		Level(level).
		With().
		Str("role", "bootstrap").
		Timestamp().
		Logger()

	return &Logger{logger}, nil
}

// ParseLevel maps a level name to a zerolog level. Names are case-insensitive
// and accept the aliases used by other logging stacks ("warning",
// "critical", "information", "none"). An empty name means Info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return zerolog.InfoLevel, nil
	case "information":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	case "none":
		return zerolog.Disabled, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	if level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	return level, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
