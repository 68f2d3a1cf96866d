// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger is a slog.Logger scoped to a named component.
type ComponentLogger struct {
	slogger *slog.Logger
}

// NewLogger creates a ComponentLogger bound to the current global logger.
// Loggers created before SetupLogger keep the previous handler.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{slogger: Logger().With("component", component)}
}

// WithOperation returns a logger that adds the operation name to every record.
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return l.with("operation", name)
}

// WithFields returns a logger with additional alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return l.with(fields...)
}

func (l *ComponentLogger) with(args ...any) *ComponentLogger {
	return &ComponentLogger{slogger: l.slogger.With(args...)}
}

// Debug logs at debug level.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

// Error logs at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}
