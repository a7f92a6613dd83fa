// Package tty answers questions about the stream glint renders to:
// whether it is an interactive terminal, whether a CI environment is
// suppressing animation, and how many columns are available.
package tty

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultWidth is assumed when the stream has no usable size.
const defaultWidth = 80

// fdWriter is implemented by writers backed by a file descriptor,
// such as *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsCI reports whether a continuous-integration environment signal is
// set. CI terminals often report as interactive but cannot replay
// cursor movement, so animation must be suppressed there.
func IsCI() bool {
	return os.Getenv("CI") != ""
}

// Width returns the column count of the terminal behind w, or 80 if w
// is not a terminal or its size cannot be determined.
func Width(w io.Writer) int {
	f, ok := w.(fdWriter)
	if !ok {
		return defaultWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return defaultWidth
	}
	return cols
}
