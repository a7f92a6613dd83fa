// Package spinner provides an animated terminal status line.
//
// A [Spinner] renders a recurring animation frame plus a status text to
// a terminal stream, erasing and redrawing in place. On non-interactive
// streams (pipes, CI) it degrades to a single static line.
//
// # Lifecycle
//
//	s := spinner.New("Cloning repository")
//	s.Start()
//	// ... long running work ...
//	s.Succeed()
//
// Terminal states ([Spinner.Succeed], [Spinner.Fail], [Spinner.Warn],
// [Spinner.Info]) stop the animation and write one permanent,
// newline-terminated line; the animation frames themselves are always
// erased.
//
// # Wrapping asynchronous work
//
// [Run] drives a spinner around a function or an in-flight computation
// and maps its outcome to a succeeded or failed persisted line:
//
//	s, err := spinner.Run(func() (any, error) {
//		return fetch()
//	}, spinner.Options{Text: "Fetching"}, spinner.Messages{})
//
// # Frames and styling
//
// Named frame sets resolve from the bubbles spinner definitions (dot,
// line, minidot, ...); custom sets supply their own frames and
// interval. Frame styling is either a named color tag or a custom
// formatter, resolved at render time.
package spinner
