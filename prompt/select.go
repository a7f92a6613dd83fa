package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raphi011/glint/internal/ansi"
	"github.com/raphi011/glint/styles"
)

// ErrAborted is returned by [Select.Run] when the user cancels the
// prompt.
var ErrAborted = errors.New("prompt: aborted")

// Choice is one selectable entry: a display title, the value it
// resolves to, and whether it can be submitted. Display order is
// navigation order.
type Choice[T any] struct {
	Title    string
	Value    T
	Disabled bool
}

// Choices builds a choice list from bare strings, each standing in
// for both title and value.
func Choices(titles ...string) []Choice[string] {
	choices := make([]Choice[string], len(titles))
	for i, title := range titles {
		choices[i] = Choice[string]{Title: title, Value: title}
	}
	return choices
}

// SelectOptions configures a Select prompt.
type SelectOptions[T any] struct {
	// Cursor is the initially highlighted index. Must be in [0, len).
	Cursor int

	// Hint replaces the default navigation hint.
	Hint string

	// Warning replaces the default disabled-choice warning.
	Warning string

	// Writer is the render target. Defaults to os.Stderr so the
	// selected value can be piped from stdout.
	Writer io.Writer

	// Input is the key-event source for [Select.Run]. Defaults to
	// os.Stdin.
	Input *os.File

	// OnChange is invoked with the newly selected value on every
	// cursor move.
	OnChange func(T)
}

const (
	defaultHint    = "Use arrow keys, return to submit"
	defaultWarning = "This option is disabled"
)

// Select is a keyboard-driven single-choice list. It renders
// immediately on construction and re-renders in place as the cursor
// moves; submitting or aborting closes it for good.
type Select[T any] struct {
	message  string
	choices  []Choice[T]
	hint     string
	warning  string
	out      io.Writer
	in       *os.File
	onChange func(T)

	cursor   int
	value    T
	done     bool
	aborted  bool
	rendered bool
	closed   bool
	term     *terminal
}

// NewSelect creates a select prompt with default options and performs
// the initial render.
func NewSelect[T any](message string, choices []Choice[T]) (*Select[T], error) {
	return NewSelectWithOptions(message, choices, SelectOptions[T]{})
}

// NewSelectWithOptions creates a select prompt from the given
// configuration and performs the initial render.
func NewSelectWithOptions[T any](message string, choices []Choice[T], opts SelectOptions[T]) (*Select[T], error) {
	if len(choices) == 0 {
		return nil, errors.New("prompt: select needs at least one choice")
	}
	if opts.Cursor < 0 || opts.Cursor >= len(choices) {
		return nil, fmt.Errorf("prompt: cursor %d out of range [0,%d)", opts.Cursor, len(choices))
	}

	s := &Select[T]{
		message:  message,
		choices:  choices,
		hint:     defaultHint,
		warning:  defaultWarning,
		out:      os.Stderr,
		in:       os.Stdin,
		onChange: opts.OnChange,
		cursor:   opts.Cursor,
		value:    choices[opts.Cursor].Value,
	}
	if opts.Hint != "" {
		s.hint = opts.Hint
	}
	if opts.Warning != "" {
		s.warning = opts.Warning
	}
	if opts.Writer != nil {
		s.out = opts.Writer
	}
	if opts.Input != nil {
		s.in = opts.Input
	}

	s.render()
	return s, nil
}

// Value returns the currently selected value: the highlighted
// choice's value before submit, the final selection after.
func (s *Select[T]) Value() T { return s.value }

// Cursor returns the highlighted index.
func (s *Select[T]) Cursor() int { return s.cursor }

// Done reports whether the prompt has been submitted or aborted.
func (s *Select[T]) Done() bool { return s.done }

// Aborted reports whether the prompt was cancelled.
func (s *Select[T]) Aborted() bool { return s.aborted }

// MoveCursor highlights choice n, updates the selected value, and
// fires the change hook. Precondition: 0 <= n < len(choices).
func (s *Select[T]) MoveCursor(n int) {
	if s.done {
		return
	}
	s.cursor = n
	s.value = s.choices[n].Value
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// Up moves the cursor one choice up. The first choice is a hard stop:
// the cursor stays put and the bell rings.
func (s *Select[T]) Up() {
	if s.done {
		return
	}
	if s.cursor == 0 {
		s.bell()
		return
	}
	s.MoveCursor(s.cursor - 1)
	s.render()
}

// Down moves the cursor one choice down, with a hard stop and bell at
// the last choice.
func (s *Select[T]) Down() {
	if s.done {
		return
	}
	if s.cursor == len(s.choices)-1 {
		s.bell()
		return
	}
	s.MoveCursor(s.cursor + 1)
	s.render()
}

// Next moves the cursor forward one choice, silently wrapping from
// the last choice back to the first.
func (s *Select[T]) Next() {
	if s.done {
		return
	}
	s.MoveCursor((s.cursor + 1) % len(s.choices))
	s.render()
}

// First jumps to the first choice.
func (s *Select[T]) First() {
	if s.done {
		return
	}
	s.MoveCursor(0)
	s.render()
}

// Last jumps to the last choice.
func (s *Select[T]) Last() {
	if s.done {
		return
	}
	s.MoveCursor(len(s.choices) - 1)
	s.render()
}

// Submit resolves the prompt with the highlighted choice. Submitting
// a disabled choice is rejected with a bell and the prompt stays
// open.
func (s *Select[T]) Submit() {
	if s.done {
		return
	}
	if s.choices[s.cursor].Disabled {
		s.bell()
		return
	}
	s.done = true
	s.render()
	io.WriteString(s.out, "\r\n")
	s.close()
}

// Abort cancels the prompt.
func (s *Select[T]) Abort() {
	if s.done {
		return
	}
	s.done = true
	s.aborted = true
	s.render()
	io.WriteString(s.out, "\r\n")
	s.close()
}

// Run puts the input terminal into raw mode and dispatches key events
// until the prompt resolves. It returns the selected value, or
// [ErrAborted] after a cancel.
func (s *Select[T]) Run() (T, error) {
	var zero T

	s.term = newTerminal(s.in)
	if err := s.term.makeRaw(); err != nil {
		// Construction already hid the cursor; bring it back.
		s.close()
		return zero, err
	}

	for !s.done {
		k, err := s.term.readKey()
		if err != nil {
			s.Abort()
			return zero, fmt.Errorf("prompt: read key: %w", err)
		}
		s.handleKey(k)
	}

	if s.aborted {
		return zero, ErrAborted
	}
	return s.value, nil
}

// handleKey maps a named key event onto a prompt operation. The
// space bar submits, like return; tab cycles with wrap-around while
// the arrow keys stop hard at the boundaries.
func (s *Select[T]) handleKey(k Key) {
	switch k.Name {
	case KeyUp:
		s.Up()
	case KeyDown:
		s.Down()
	case KeyTab:
		s.Next()
	case KeyHome:
		s.First()
	case KeyEnd:
		s.Last()
	case KeyReturn, KeySpace:
		s.Submit()
	case KeyEsc, KeyCtrlC:
		s.Abort()
	}
}

// close releases the input terminal and restores cursor visibility.
func (s *Select[T]) close() {
	if s.closed {
		return
	}
	s.closed = true
	io.WriteString(s.out, ansi.ShowCursor)
	if s.term != nil {
		s.term.restore()
	}
}

// bell signals a rejected action without changing state.
func (s *Select[T]) bell() {
	io.WriteString(s.out, ansi.Bell)
}

// render draws the prompt. The first render hides the cursor; every
// re-render first erases the previous frame, whose height is fixed at
// one status line plus one line per choice. Once done, the choice
// list is omitted and only the status line remains.
func (s *Select[T]) render() {
	var b strings.Builder

	if !s.rendered {
		b.WriteString(ansi.HideCursor)
		s.rendered = true
	} else {
		b.WriteString(ansi.EraseLines(len(s.choices) + 1))
	}

	b.WriteString(s.symbol())
	b.WriteString(" ")
	b.WriteString(styles.Bold.Render(s.message))
	b.WriteString(" ")
	b.WriteString(styles.MutedStyle.Render(styles.DelimSymbol()))
	b.WriteString(" ")
	switch {
	case s.done:
		b.WriteString(s.choices[s.cursor].Title)
	case s.choices[s.cursor].Disabled:
		b.WriteString(styles.WarningStyle.Render(s.warning))
	default:
		b.WriteString(styles.MutedStyle.Render(s.hint))
	}

	if !s.done {
		for i, c := range s.choices {
			// Raw mode clears OPOST, so a bare LF would not return
			// the cursor to column 0.
			b.WriteString("\r\n")
			b.WriteString(s.renderChoice(c, i == s.cursor))
		}
	}

	io.WriteString(s.out, b.String())
}

// symbol returns the status glyph for the prompt line.
func (s *Select[T]) symbol() string {
	switch {
	case s.aborted:
		return styles.ErrorStyle.Render(styles.ErrorSymbol())
	case s.done:
		return styles.SuccessStyle.Render(styles.SuccessSymbol())
	default:
		return styles.AccentStyle.Render(styles.QuestionSymbol())
	}
}

// renderChoice draws one choice line. The highlighted choice carries
// the pointer glyph; a highlighted but disabled choice renders
// underlined-faint: focused, but not selectable.
func (s *Select[T]) renderChoice(c Choice[T], active bool) string {
	switch {
	case active && c.Disabled:
		return styles.PrimaryStyle.Render(styles.PointerSymbol()) + " " +
			styles.DisabledSelectedStyle.Render(c.Title)
	case active:
		return styles.PrimaryStyle.Render(styles.PointerSymbol()) + " " +
			styles.SelectedStyle.Render(c.Title)
	case c.Disabled:
		return "  " + styles.DisabledStyle.Render(c.Title)
	default:
		return "  " + c.Title
	}
}
