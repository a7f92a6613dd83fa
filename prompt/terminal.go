package prompt

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// terminal owns the raw-mode input stream a prompt reads key events
// from. Output is handled by the prompt itself; splitting the two
// keeps rendering testable against plain writers.
type terminal struct {
	in    *os.File
	br    *bufio.Reader
	state *term.State
}

func newTerminal(in *os.File) *terminal {
	return &terminal{in: in, br: bufio.NewReader(in)}
}

// makeRaw switches the input into raw mode so single keypresses are
// delivered without echo or line buffering.
func (t *terminal) makeRaw() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("prompt: input %s is not a terminal", t.in.Name())
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("prompt: enter raw mode: %w", err)
	}
	t.state = state
	return nil
}

// restore leaves raw mode. Safe to call when makeRaw never ran.
func (t *terminal) restore() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	return term.Restore(int(t.in.Fd()), state)
}

// readKey blocks for the next decoded key event.
func (t *terminal) readKey() (Key, error) {
	return readKey(t.br)
}
