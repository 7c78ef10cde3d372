// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger provides the structured, component-tagged logger of the
// tonemark command.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Logger writes leveled events tagged with the component that emitted them.
type Logger struct {
	logger zerolog.Logger
}

// New returns a Logger writing JSON lines to w.
func New(w io.Writer, level zerolog.Level) *Logger {
	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &Logger{logger: logger}
}

// NewConsole returns a Logger writing human readable lines to w.
func NewConsole(w io.Writer, level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}, level)
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// ParseLevel parses one of debug, info, warn or error.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "error":
		return zerolog.ParseLevel(strings.ToLower(s))
	}
	return zerolog.NoLevel, errors.Errorf("unknown log level %q", s)
}

// Debug logs message at debug level with the given fields.
func (l *Logger) Debug(component, message string, fields map[string]interface{}) {
	event := l.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Info logs message at info level with the given fields.
func (l *Logger) Info(component, message string, fields map[string]interface{}) {
	event := l.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Warning logs message at warn level with the given fields.
func (l *Logger) Warning(component, message string, fields map[string]interface{}) {
	event := l.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Error logs err at error level with the given fields.
func (l *Logger) Error(component string, err error, fields map[string]interface{}) {
	event := l.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
