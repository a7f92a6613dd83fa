// Package ansi holds the terminal control sequences glint emits.
//
// Cursor visibility, line erasure, and the bell are the only wire-level
// contract the library has with the terminal; everything here matches the
// conventional ANSI sequences understood by standard terminal emulators.
package ansi

import "strings"

const (
	// HideCursor hides the terminal cursor
	HideCursor = "\x1b[?25l"

	// ShowCursor restores the terminal cursor
	ShowCursor = "\x1b[?25h"

	// Bell rings the terminal bell
	Bell = "\a"

	// eraseLine erases the entire current line
	eraseLine = "\x1b[2K"

	// cursorUp moves the cursor up one row
	cursorUp = "\x1b[1A"
)

// EraseLines returns the sequence that erases n rows: the row the cursor
// is on and the n-1 rows above it. The cursor ends at column 0 of the
// topmost erased row, ready for a redraw. Returns "" for n <= 0.
func EraseLines(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("\r" + eraseLine)
		if i < n-1 {
			b.WriteString(cursorUp)
		}
	}
	return b.String()
}
