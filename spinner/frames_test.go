package spinner

import (
	"sort"
	"testing"
	"time"
)

func TestResolveFrames(t *testing.T) {
	t.Parallel()

	t.Run("defaults to dot", func(t *testing.T) {
		t.Parallel()
		frames, interval, err := resolveFrames(Options{})
		if err != nil {
			t.Fatalf("resolveFrames: %v", err)
		}
		if len(frames) == 0 {
			t.Error("default frame set is empty")
		}
		if interval <= 0 {
			t.Errorf("default interval = %v, want > 0", interval)
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		t.Parallel()
		if _, _, err := resolveFrames(Options{Frames: "wobble"}); err == nil {
			t.Error("expected error for unknown frame set")
		}
	})

	t.Run("empty custom set fails", func(t *testing.T) {
		t.Parallel()
		if _, _, err := resolveFrames(Options{CustomFrames: []string{}}); err == nil {
			t.Error("expected error for empty custom frame set")
		}
	})

	t.Run("custom set wins over name", func(t *testing.T) {
		t.Parallel()
		frames, interval, err := resolveFrames(Options{
			Frames:       "line",
			CustomFrames: []string{"a", "b"},
		})
		if err != nil {
			t.Fatalf("resolveFrames: %v", err)
		}
		if len(frames) != 2 || frames[0] != "a" {
			t.Errorf("frames = %v, want custom set", frames)
		}
		if interval != defaultInterval {
			t.Errorf("interval = %v, want default %v", interval, defaultInterval)
		}
	})

	t.Run("explicit interval is kept", func(t *testing.T) {
		t.Parallel()
		_, interval, err := resolveFrames(Options{Interval: 200 * time.Millisecond})
		if err != nil {
			t.Fatalf("resolveFrames: %v", err)
		}
		if interval != 200*time.Millisecond {
			t.Errorf("interval = %v, want 200ms", interval)
		}
	})
}

func TestFrameSetNames(t *testing.T) {
	t.Parallel()

	names := FrameSetNames()
	if !sort.StringsAreSorted(names) {
		t.Error("FrameSetNames() is not sorted")
	}

	for _, name := range names {
		frames, ok := FrameSet(name)
		if !ok {
			t.Errorf("FrameSet(%q) not found", name)
			continue
		}
		if len(frames) == 0 {
			t.Errorf("frame set %q is empty", name)
		}
	}

	if _, ok := FrameSet("dot"); !ok {
		t.Error("built-in set \"dot\" missing")
	}
	if _, ok := FrameSet("wobble"); ok {
		t.Error("FrameSet(\"wobble\") should not exist")
	}
}

func TestFrameSetReturnsCopy(t *testing.T) {
	t.Parallel()

	frames, ok := FrameSet("dot")
	if !ok || len(frames) == 0 {
		t.Fatal("built-in set \"dot\" missing")
	}

	original := frames[0]
	frames[0] = "mutated"

	again, _ := FrameSet("dot")
	if again[0] != original {
		t.Errorf("mutating a returned set changed the shared definition: %q", again[0])
	}
}

func TestNewWithOptionsFailsFast(t *testing.T) {
	t.Parallel()

	if _, err := NewWithOptions(Options{CustomFrames: []string{}}); err == nil {
		t.Error("expected configuration error for empty custom frames")
	}
	if _, err := NewWithOptions(Options{Frames: "nope"}); err == nil {
		t.Error("expected configuration error for unknown frame set")
	}
}
