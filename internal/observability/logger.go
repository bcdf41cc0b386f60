// Package observability provides structured logging for usermap components.
//
// Logger wraps log/slog with a persistent component label so every message
// names the subsystem it came from.
package observability

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog with a persistent component label.
type Logger struct {
	inner     *slog.Logger
	component string
}

// NewLogger creates a structured logger for a component, emitting at the
// given level. Output defaults to os.Stderr if w is nil.
func NewLogger(component string, w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		inner:     slog.New(handler),
		component: component,
	}
}

// Nop returns a logger that discards everything. Library code uses it as
// the default when the caller wires no diagnostic sink.
func Nop() *Logger {
	return &Logger{
		inner: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Named returns a copy of l labelled with a different component.
func (l *Logger) Named(component string) *Logger {
	return &Logger{inner: l.inner, component: component}
}

// attrs prepends the component label to the arguments.
func (l *Logger) attrs(args []any) []any {
	return append([]any{slog.String("component", l.component)}, args...)
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	l.inner.Debug(msg, l.attrs(args)...)
}

// Info logs at INFO level.
func (l *Logger) Info(msg string, args ...any) {
	l.inner.Info(msg, l.attrs(args)...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	l.inner.Warn(msg, l.attrs(args)...)
}

// Error logs at ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	l.inner.Error(msg, l.attrs(args)...)
}

// ParseLevel maps a configuration string to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}
