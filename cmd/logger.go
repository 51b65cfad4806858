package cmd

import (
	"context"
	"log/slog"
)

// nopHandler drops every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger = slog.New(nopHandler{})

// SetLogger sets the logger for the package. nil restores the silent default.
// Call it before starting the control loop; it is not synchronized.
//
// Levels:
//   - Debug: sequence steps, blinks
//   - Info: startup, pet state changes, button actions
//   - Warn: frame push failures, bad build settings
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger
}
