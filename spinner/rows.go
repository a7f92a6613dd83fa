package spinner

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// prefixWidth is the fixed number of columns the frame glyph and its
// separator occupy at the start of the first row.
const prefixWidth = 2

// rowCount returns the number of terminal rows the rendered status
// line will occupy when wrapped at the given column width. Display
// width is measured ANSI- and wide-rune-aware, so double-width glyphs
// count as two columns. Each text line occupies at least one row.
func rowCount(text string, columns int) int {
	if columns <= 0 {
		columns = 1
	}
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		w := prefixWidth + xansi.StringWidth(line)
		r := (w + columns - 1) / columns
		if r < 1 {
			r = 1
		}
		rows += r
	}
	return rows
}
