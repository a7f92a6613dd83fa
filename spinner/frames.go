package spinner

import (
	"fmt"
	"slices"
	"sort"
	"time"

	bspinner "charm.land/bubbles/v2/spinner"
)

// defaultInterval is used for custom frame sets that don't declare one.
const defaultInterval = 80 * time.Millisecond

// frameSets maps names to the built-in bubbles spinner definitions.
var frameSets = map[string]bspinner.Spinner{
	"dot":       bspinner.Dot,
	"line":      bspinner.Line,
	"minidot":   bspinner.MiniDot,
	"jump":      bspinner.Jump,
	"pulse":     bspinner.Pulse,
	"points":    bspinner.Points,
	"globe":     bspinner.Globe,
	"moon":      bspinner.Moon,
	"monkey":    bspinner.Monkey,
	"meter":     bspinner.Meter,
	"hamburger": bspinner.Hamburger,
	"ellipsis":  bspinner.Ellipsis,
}

// DefaultFrames is the frame set used when none is configured.
const DefaultFrames = "dot"

// FrameSetNames returns the built-in frame set names, sorted.
func FrameSetNames() []string {
	names := make([]string, 0, len(frameSets))
	for name := range frameSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FrameSet returns the frames of a named built-in set. The result is
// a copy; mutating it cannot corrupt the shared definitions.
func FrameSet(name string) ([]string, bool) {
	set, ok := frameSets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(set.Frames), true
}

// resolveFrames picks the frame sequence and tick interval from the
// options: a caller-supplied custom set wins over a named built-in.
// A declared-but-empty custom set and an unknown name are
// configuration errors.
func resolveFrames(opts Options) ([]string, time.Duration, error) {
	if opts.CustomFrames != nil {
		if len(opts.CustomFrames) == 0 {
			return nil, 0, fmt.Errorf("spinner: custom frame set declares no frames")
		}
		interval := opts.Interval
		if interval <= 0 {
			interval = defaultInterval
		}
		return opts.CustomFrames, interval, nil
	}

	name := opts.Frames
	if name == "" {
		name = DefaultFrames
	}
	set, ok := frameSets[name]
	if !ok {
		return nil, 0, fmt.Errorf("spinner: unknown frame set %q", name)
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = set.FPS
	}
	return set.Frames, interval, nil
}
