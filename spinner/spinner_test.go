package spinner

import (
	"bytes"
	"strings"
	"testing"
	"time"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/raphi011/glint/internal/ansi"
)

const eraseLine = "\x1b[2K"

func boolp(b bool) *bool { return &b }

// newTestSpinner builds an animation-enabled spinner writing to a
// buffer with a fixed width and an interval long enough that no tick
// fires during a test.
func newTestSpinner(t *testing.T, buf *bytes.Buffer, text string, columns int) *Spinner {
	t.Helper()
	s, err := NewWithOptions(Options{
		Text:     text,
		Writer:   buf,
		Enabled:  boolp(true),
		Columns:  columns,
		Interval: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewWithOptions: %v", err)
	}
	return s
}

func TestDisabledStartWritesStaticLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := NewWithOptions(Options{Writer: &buf, Enabled: boolp(false)})
	if err != nil {
		t.Fatalf("NewWithOptions: %v", err)
	}

	s.Start("Loading")

	if got, want := buf.String(), "- Loading\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if s.IsSpinning() {
		t.Error("disabled spinner should not be spinning")
	}
	if s.ticker != nil {
		t.Error("disabled spinner should not own a timer")
	}

	// Stop on a disabled spinner is a no-op and writes nothing.
	s.Stop()
	if got := buf.String(); got != "- Loading\n" {
		t.Errorf("Stop() on disabled spinner wrote output: %q", got)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTestSpinner(t, &buf, "Working", 80)

	s.Start()
	afterFirst := buf.String()
	s.Start()

	if got := buf.String(); got != afterFirst {
		t.Errorf("second Start() produced output: %q", strings.TrimPrefix(got, afterFirst))
	}
	if hides := strings.Count(buf.String(), ansi.HideCursor); hides != 1 {
		t.Errorf("cursor hidden %d times, want 1", hides)
	}

	s.Stop()
}

func TestTimerPresentIffSpinning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTestSpinner(t, &buf, "Working", 80)

	if s.ticker != nil {
		t.Error("idle spinner owns a timer")
	}
	s.Start()
	if !s.IsSpinning() || s.ticker == nil {
		t.Error("started spinner must be spinning with a timer")
	}
	s.Stop()
	if s.IsSpinning() || s.ticker != nil {
		t.Error("stopped spinner must not own a timer")
	}
}

func TestStopClearsExactlyRenderedRows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	// 25 chars + 2-column prefix at width 10 = 3 rows.
	s := newTestSpinner(t, &buf, strings.Repeat("x", 25), 10)

	s.Start()
	s.Stop()

	// The initial render has nothing to erase; the only erases come
	// from Stop clearing the frame that is on screen.
	if erases := strings.Count(buf.String(), eraseLine); erases != 3 {
		t.Errorf("line-clears issued = %d, want 3", erases)
	}
	if shows := strings.Count(buf.String(), ansi.ShowCursor); shows != 1 {
		t.Errorf("cursor shown %d times, want 1", shows)
	}

	// A second Stop must not clear anything further.
	before := buf.String()
	s.Stop()
	if got := buf.String(); got != before {
		t.Errorf("second Stop() produced output: %q", strings.TrimPrefix(got, before))
	}
}

func TestRenderErasesPreviousFrameNotUpcoming(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTestSpinner(t, &buf, "ab", 10) // 1 row

	s.render()
	if erases := strings.Count(buf.String(), eraseLine); erases != 0 {
		t.Fatalf("first render erased %d rows, want 0", erases)
	}

	// Grow the text to 3 rows. The next render must still erase only
	// the single row currently on screen.
	s.SetText(strings.Repeat("x", 25))
	buf.Reset()
	s.render()
	if erases := strings.Count(buf.String(), eraseLine); erases != 1 {
		t.Errorf("render erased %d rows, want 1 (the previous frame)", erases)
	}

	// Now the cached count reflects the 3-row frame just drawn.
	buf.Reset()
	s.render()
	if erases := strings.Count(buf.String(), eraseLine); erases != 3 {
		t.Errorf("render erased %d rows, want 3", erases)
	}
}

func TestFrameIndexWraps(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := NewWithOptions(Options{
		Writer:       &buf,
		Enabled:      boolp(true),
		Columns:      80,
		CustomFrames: []string{"1", "2", "3"},
		Interval:     time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewWithOptions: %v", err)
	}

	s.Start()
	// Wait for enough ticks that the index must have wrapped.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		wrapped := strings.Count(buf.String(), "1") > 1
		s.mu.Unlock()
		if wrapped {
			break
		}
		time.Sleep(time.Millisecond)
	}
	s.Stop()

	if strings.Count(buf.String(), "1") < 2 {
		t.Error("frame index did not wrap back to the first frame")
	}
	s.mu.Lock()
	idx := s.frameIndex
	s.mu.Unlock()
	if idx != 0 {
		t.Errorf("frame index after Stop() = %d, want 0", idx)
	}
}

func TestSetTextRecomputesRowCache(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTestSpinner(t, &buf, "ab", 10)

	if s.rows != 1 {
		t.Fatalf("initial rows = %d, want 1", s.rows)
	}
	s.SetText(strings.Repeat("x", 25))
	if s.rows != 3 {
		t.Errorf("rows after SetText = %d, want 3", s.rows)
	}
}

func TestStopAndPersistWritesPermanentLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := NewWithOptions(Options{Text: "deploy", Writer: &buf, Enabled: boolp(false)})
	if err != nil {
		t.Fatalf("NewWithOptions: %v", err)
	}

	s.StopAndPersist(PersistOptions{Symbol: ">", Text: "shipped"})

	if got, want := xansi.Strip(buf.String()), "> shipped\n"; got != want {
		t.Errorf("persisted line = %q, want %q", got, want)
	}
}

func TestTerminalStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(s *Spinner)
		want string
	}{
		{"succeed with override", func(s *Spinner) { s.Succeed("done") }, "✔ done\n"},
		{"fail with override", func(s *Spinner) { s.Fail("broken") }, "✖ broken\n"},
		{"warn with override", func(s *Spinner) { s.Warn("careful") }, "⚠ careful\n"},
		{"info with override", func(s *Spinner) { s.Info("note") }, "ℹ note\n"},
		{"succeed falls back to text", func(s *Spinner) { s.Succeed() }, "✔ working\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			s, err := NewWithOptions(Options{Text: "working", Writer: &buf, Enabled: boolp(false)})
			if err != nil {
				t.Fatalf("NewWithOptions: %v", err)
			}
			tt.call(s)
			if got := xansi.Strip(buf.String()); got != tt.want {
				t.Errorf("persisted line = %q, want %q", got, tt.want)
			}
		})
	}
}
