package wdraw

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/wdraw/backend/retained"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports
// false so callers skip building the message.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger that receives wdraw diagnostics.
// By default wdraw logs nothing. Pass nil to restore the silent default.
//
// Native backend failures are logged at [slog.LevelWarn], one record per
// failed call. The logger is also handed to the retained backend so its
// rendering engine reports through the same sink.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	retained.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// traceFailure records a failed native call.
func traceFailure(op string, err error) {
	Logger().Warn("wdraw: "+op+" failed", "err", err)
}
