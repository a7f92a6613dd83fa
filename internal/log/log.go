// Package log provides context-aware diagnostics for glint.
// Diagnostics go to stderr so they never mix with prompt output
// or the selected value printed to stdout.
package log

import (
	"context"
	"fmt"
	"io"
)

type ctxKey struct{}

// Logger provides diagnostic and verbose output.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a new logger.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
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
	return &Logger{out: io.Discard}
}

// Printf writes formatted diagnostic output.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of diagnostic output.
func (l *Logger) Println(args ...any) {
	fmt.Fprintln(l.out, args...)
}

// Debugf writes formatted output only when verbose mode is enabled.
// Used for terminal detection results, key decoding and render details.
func (l *Logger) Debugf(format string, args ...any) {
	if l.verbose {
		fmt.Fprintf(l.out, "debug: "+format+"\n", args...)
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
