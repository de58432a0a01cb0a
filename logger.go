package curve

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false for all levels,
// so slog never formats the message or its attributes.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

// current holds the logger shared by the engine, internal packages and
// commands.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes curve's log output to l. Curves are silent until this is
// called, and passing nil makes them silent again. SetLogger may be called
// while other goroutines are logging.
//
// The engine only logs configuration changes, at [slog.LevelDebug]: a curve
// being built and an inverted limit range being swapped. Get never logs.
//
// Example:
//
//	curve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return current.Load()
}
