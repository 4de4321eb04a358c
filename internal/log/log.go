// Package log provides context-aware logging for breath.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

type ctxKey struct{}

// Logger provides user-facing output plus leveled diagnostics.
// Plain Printf/Println output goes straight to the writer; warnings and
// command traces go through slog with a tint handler so they are
// timestamped and colored when the terminal supports it.
type Logger struct {
	out     io.Writer
	sl      *slog.Logger
	verbose bool
	quiet   bool
}

// New creates a new logger. Verbose enables external command tracing,
// quiet suppresses everything except warnings.
func New(out io.Writer, verbose, quiet bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})
	return &Logger{
		out:     out,
		sl:      slog.New(handler),
		verbose: verbose,
		quiet:   quiet,
	}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard, sl: slog.New(slog.DiscardHandler)}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Warnf logs a non-fatal problem. Warnings are shown even in quiet mode.
func (l *Logger) Warnf(format string, args ...any) {
	l.sl.Warn(fmt.Sprintf(format, args...))
}

// Command logs an external command execution.
// Only prints when verbose mode is enabled.
func (l *Logger) Command(name string, args ...string) {
	if l.verbose {
		l.sl.Debug("$ " + name + " " + strings.Join(args, " "))
	}
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
