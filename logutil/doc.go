// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides structured logging for saba-url built on slog.
//
// # Basic Usage
//
//	// Initialize logging once, in main
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("logging configured", "level", level)
//
// Component-scoped loggers carry their context on every record:
//
//	log := logutil.NewLogger("cli").WithOperation("parse")
//	log.Debug("batch complete", "count", n)
//
// # Debug Mode
//
// Debug logging is enabled by passing debug=true to SetupLogger, by setting
// SABA_URL_DEBUG=true, or with SetLevel(ParseLevel("debug")). IsDebugEnabled
// lets callers skip building expensive debug attributes.
//
// # Structured Logging
//
// With structured=true records are written as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"DEBUG","msg":"batch complete","count":3}
//
// Otherwise the slog text format is used:
//
//	time=2026-01-15T10:30:00Z level=DEBUG msg="batch complete" count=3
package logutil
