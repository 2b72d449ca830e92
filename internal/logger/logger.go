// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers shared by the go-config-gate binaries.
//
// Logger embeds zerolog.Logger, so the whole zerolog API (Debug, Info,
// Warn, Error, Fatal, ...) is available on *Logger directly. Code that
// runs inside an HTTP request should not hold on to a *Logger of its
// own; it recovers the request-scoped one via FromRequest or
// FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so helper methods can be added without
// touching the upstream type.
type Logger struct {
	zerolog.Logger
}

// newZerolog builds the zerolog.Logger both constructors share: JSON
// entries carrying a "role" field, a "time" timestamp and a "func"
// caller field with the fully-qualified function name. The global level
// is forced to Debug so nothing is filtered out before shipping.
func newZerolog(w io.Writer, role string) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // function name instead of file:line
	}
	zerolog.CallerFieldName = "func"

	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// NewLogger returns the server-side *Logger. Entries go to stdout as
// JSON, tagged with the given role (e.g. "config-gate-server") so logs
// from the two binaries can be told apart when collected together.
func NewLogger(role string) *Logger {
	return &Logger{newZerolog(os.Stdout, role)}
}

// NewClientLogger returns the client-side *Logger. The client prints
// the protected response it fetched on stdout, so its log entries go to
// stderr to keep stdout clean for that output.
func NewClientLogger(role string) *Logger {
	return &Logger{newZerolog(os.Stderr, role)}
}

// Nop returns a *Logger that discards everything. Meant for tests and
// other places where log output is noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger carrying all fields of the
// receiver. The child can be enriched (say, with a trace ID) without
// the parent seeing those fields.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest recovers the request-scoped logger that the trace-id
// middleware attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext recovers the logger attached to ctx. zerolog falls back
// to its global logger when ctx carries none, so the result is never
// nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
