package spinner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/raphi011/glint/internal/ansi"
	"github.com/raphi011/glint/internal/tty"
	"github.com/raphi011/glint/styles"
)

// Options configures a Spinner.
type Options struct {
	// Text is the status text rendered next to the animation frame.
	Text string

	// Frames names a built-in frame set (see [FrameSetNames]).
	// Defaults to [DefaultFrames].
	Frames string

	// CustomFrames overrides Frames with a caller-supplied sequence.
	// A non-nil empty slice is a configuration error.
	CustomFrames []string

	// Interval between animation frames. Defaults to the named set's
	// interval, or 80ms for custom sets.
	Interval time.Duration

	// Style colors the frame glyph. The zero value uses the theme's
	// primary color.
	Style Style

	// Writer is the target stream. Defaults to os.Stderr so progress
	// text does not pollute piped stdout.
	Writer io.Writer

	// Enabled forces animation on or off. When nil, animation is
	// enabled iff the writer is an interactive terminal and no CI
	// environment signal is set.
	Enabled *bool

	// Columns fixes the terminal width used for row accounting.
	// When 0, the width is detected from the writer on every text
	// change.
	Columns int

	// KeepCursor leaves the terminal cursor visible while spinning.
	KeepCursor bool
}

// Result is the captured outcome of a wrapped action.
type Result struct {
	Value any
	Err   error
}

// Spinner is an animated status line writing to a terminal stream.
// All methods are safe for concurrent use; the animation runs on its
// own ticker goroutine while the caller's work proceeds.
type Spinner struct {
	mu sync.Mutex

	text     string
	frames   []string
	interval time.Duration
	style    Style
	out      io.Writer
	enabled  bool
	columns  func() int

	keepCursor   bool
	hiddenCursor bool
	frameIndex   int
	rows         int // rows the current text occupies when rendered
	linesToClear int // rows the previously rendered frame occupies
	spinning     bool
	ticker       *time.Ticker
	stop         chan struct{}
	last         Result
}

// New creates a spinner with the given status text and default
// configuration. It cannot fail: the default frame set is built in.
func New(text string) *Spinner {
	s, err := NewWithOptions(Options{Text: text})
	if err != nil {
		// Unreachable with zero-value options.
		panic(err)
	}
	return s
}

// NewWithOptions creates a spinner from the given configuration.
// It fails fast on a malformed frame set.
func NewWithOptions(opts Options) (*Spinner, error) {
	frames, interval, err := resolveFrames(opts)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	enabled := tty.IsTerminal(out) && !tty.IsCI()
	if opts.Enabled != nil {
		enabled = *opts.Enabled
	}

	columns := func() int { return tty.Width(out) }
	if opts.Columns > 0 {
		columns = func() int { return opts.Columns }
	}

	s := &Spinner{
		frames:     frames,
		interval:   interval,
		style:      opts.Style,
		out:        out,
		enabled:    enabled,
		columns:    columns,
		keepCursor: opts.KeepCursor,
	}
	s.setText(opts.Text)
	return s, nil
}

// Text returns the current status text.
func (s *Spinner) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetText updates the status text. The wrapped row count is recomputed
// against the stream's current width; the running animation picks up
// the new text on its next frame.
func (s *Spinner) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setText(text)
}

// setText recomputes the row cache. Callers hold s.mu.
func (s *Spinner) setText(text string) {
	s.text = text
	s.rows = rowCount(text, s.columns())
}

// IsSpinning reports whether the animation timer is running.
func (s *Spinner) IsSpinning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spinning
}

// LastResult returns the outcome captured by the [Run] wrapper.
func (s *Spinner) LastResult() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Start begins the animation, optionally updating the status text
// first. On a disabled spinner it writes a single static line and
// returns. Starting a spinning spinner is a no-op.
func (s *Spinner) Start(text ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(text) > 0 {
		s.setText(text[0])
	}

	if !s.enabled {
		fmt.Fprintf(s.out, "- %s\n", s.text)
		return
	}
	if s.spinning {
		return
	}

	if !s.keepCursor {
		io.WriteString(s.out, ansi.HideCursor)
		s.hiddenCursor = true
	}
	s.render()

	s.ticker = time.NewTicker(s.interval)
	s.stop = make(chan struct{})
	s.spinning = true
	go s.loop(s.ticker, s.stop)
}

// loop advances and redraws frames until stopped. The ticker and stop
// channel are passed in so a Stop/Start cycle cannot race a stale
// goroutine against fresh state.
func (s *Spinner) loop(ticker *time.Ticker, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.spinning {
				s.frameIndex = (s.frameIndex + 1) % len(s.frames)
				s.render()
			}
			s.mu.Unlock()
		}
	}
}

// render erases the previously drawn frame and draws the current one.
// The erase count comes from the previous render: it must match what
// is on screen, not what is about to be drawn. Callers hold s.mu.
func (s *Spinner) render() {
	if s.linesToClear > 0 {
		io.WriteString(s.out, ansi.EraseLines(s.linesToClear))
	} else {
		io.WriteString(s.out, "\r")
	}
	fmt.Fprintf(s.out, "%s %s", s.style.render(s.frames[s.frameIndex]), s.text)
	s.linesToClear = s.rows
}

// clear erases the last drawn frame. Callers hold s.mu.
func (s *Spinner) clear() {
	if s.linesToClear > 0 {
		io.WriteString(s.out, ansi.EraseLines(s.linesToClear))
		s.linesToClear = 0
	}
}

// Stop halts the animation, erases the last drawn frame, and restores
// the cursor. Stopping a stopped or disabled spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// stopLocked tears down the timer and the on-screen frame. Callers
// hold s.mu.
func (s *Spinner) stopLocked() {
	if !s.spinning {
		return
	}
	s.ticker.Stop()
	close(s.stop)
	s.ticker = nil
	s.stop = nil
	s.spinning = false
	s.frameIndex = 0

	s.clear()
	if s.hiddenCursor {
		io.WriteString(s.out, ansi.ShowCursor)
		s.hiddenCursor = false
	}
}

// PersistOptions configures the final line written by
// [Spinner.StopAndPersist].
type PersistOptions struct {
	// Symbol replaces the animation frame in the persisted line.
	Symbol string

	// Text overrides the spinner's status text.
	Text string
}

// StopAndPersist stops the animation and writes one permanent,
// newline-terminated line. Unlike animation frames, this line is
// never erased.
func (s *Spinner) StopAndPersist(opts PersistOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	text := opts.Text
	if text == "" {
		text = s.text
	}
	if opts.Symbol == "" {
		fmt.Fprintf(s.out, "%s\n", text)
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", opts.Symbol, text)
}

// Succeed stops the spinner and persists a success line, optionally
// overriding the status text.
func (s *Spinner) Succeed(text ...string) {
	s.StopAndPersist(PersistOptions{
		Symbol: styles.SuccessStyle.Render(styles.SuccessSymbol()),
		Text:   first(text),
	})
}

// Fail stops the spinner and persists a failure line.
func (s *Spinner) Fail(text ...string) {
	s.StopAndPersist(PersistOptions{
		Symbol: styles.ErrorStyle.Bold(true).Render(styles.ErrorSymbol()),
		Text:   first(text),
	})
}

// Warn stops the spinner and persists a warning line.
func (s *Spinner) Warn(text ...string) {
	s.StopAndPersist(PersistOptions{
		Symbol: styles.WarningStyle.Render(styles.WarningSymbol()),
		Text:   first(text),
	})
}

// Info stops the spinner and persists an informational line.
func (s *Spinner) Info(text ...string) {
	s.StopAndPersist(PersistOptions{
		Symbol: styles.InfoStyle.Render(styles.InfoSymbol()),
		Text:   first(text),
	})
}

// setLast records the outcome captured by the Run wrapper.
func (s *Spinner) setLast(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = r
}

func first(text []string) string {
	if len(text) > 0 {
		return text[0]
	}
	return ""
}
