package grid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled returns false so callers skip
// building the record at all.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(discardHandler{}))
}

// SetLogger installs the logger used by grid and the packages built on it.
// Nothing is logged by default; pass nil to go back to silence.
//
// Everything is logged at [slog.LevelDebug]: storage reallocation, which path
// the boolean algebra took, and flood fill / automaton statistics.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
