package spinner

import (
	"strings"
	"testing"
)

func TestRowCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		columns int
		want    int
	}{
		{"short text fits one row", "Loading", 80, 1},
		{"empty text still occupies one row", "", 80, 1},
		{"exact fit", strings.Repeat("a", 78), 80, 1},
		{"one over wraps", strings.Repeat("a", 79), 80, 2},
		{"narrow terminal", strings.Repeat("a", 10), 6, 2},
		{"multi-line sums per line", "a\nb", 80, 2},
		{"multi-line with wrap", strings.Repeat("a", 79) + "\nb", 80, 3},
		{"wide runes count two columns", "ああ", 4, 2},
		{"ansi sequences are invisible", "\x1b[32mok\x1b[0m", 80, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rowCount(tt.text, tt.columns); got != tt.want {
				t.Errorf("rowCount(%q, %d) = %d, want %d", tt.text, tt.columns, got, tt.want)
			}
		})
	}
}

func TestRowCountFormula(t *testing.T) {
	t.Parallel()

	// ceil((w+2)/c) for single-width text of length w at width c.
	for _, w := range []int{1, 5, 20, 79, 200} {
		for _, c := range []int{4, 10, 80} {
			text := strings.Repeat("x", w)
			want := (w + prefixWidth + c - 1) / c
			if got := rowCount(text, c); got != want {
				t.Errorf("rowCount(len %d, cols %d) = %d, want %d", w, c, got, want)
			}
		}
	}
}
