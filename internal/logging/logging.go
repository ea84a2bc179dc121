// Package logging defines the structured-logging seam used throughout the
// core. Nothing under internal/grid, internal/planet, internal/world, or
// internal/lifecycle logs directly; world and lifecycle accept a Logger and
// call it, the same separation the original engine drew with slog::Logger,
// and grid and planet do no logging.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the structured-logging interface the core depends on. Each
// method takes a message and an even number of key/value pairs.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
	// With returns a child Logger that includes the given key/value pairs
	// on every subsequent call, mirroring slog::Logger::new(o!(...)).
	With(keyvals ...interface{}) Logger
}

// zerologLogger adapts zerolog.Logger to the Logger interface.
type zerologLogger struct {
	log zerolog.Logger
}

// NewDefault returns a Logger backed by zerolog, writing human-readable
// output to stderr.
func NewDefault() Logger {
	return &zerologLogger{log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()}
}

// NewNop returns a Logger that discards everything, for use in tests.
func NewNop() Logger {
	return &zerologLogger{log: zerolog.Nop()}
}

func (l *zerologLogger) event(e *zerolog.Event, msg string, keyvals ...interface{}) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keyvals[i+1])
	}
	e.Msg(msg)
}

func (l *zerologLogger) Debug(msg string, keyvals ...interface{}) {
	l.event(l.log.Debug(), msg, keyvals...)
}

func (l *zerologLogger) Info(msg string, keyvals ...interface{}) {
	l.event(l.log.Info(), msg, keyvals...)
}

func (l *zerologLogger) Warn(msg string, keyvals ...interface{}) {
	l.event(l.log.Warn(), msg, keyvals...)
}

func (l *zerologLogger) Error(msg string, keyvals ...interface{}) {
	l.event(l.log.Error(), msg, keyvals...)
}

func (l *zerologLogger) With(keyvals ...interface{}) Logger {
	ctx := l.log.With()
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, keyvals[i+1])
	}
	return &zerologLogger{log: ctx.Logger()}
}
