package ansi

import (
	"strings"
	"testing"
)

func TestEraseLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		n          int
		wantErases int
		wantUps    int
	}{
		{"zero is empty", 0, 0, 0},
		{"negative is empty", -3, 0, 0},
		{"one line, no cursor movement up", 1, 1, 0},
		{"three lines move up twice", 3, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := EraseLines(tt.n)

			if erases := strings.Count(got, eraseLine); erases != tt.wantErases {
				t.Errorf("erase count = %d, want %d", erases, tt.wantErases)
			}
			if ups := strings.Count(got, cursorUp); ups != tt.wantUps {
				t.Errorf("cursor-up count = %d, want %d", ups, tt.wantUps)
			}
		})
	}
}

func TestEraseLinesEndsReadyForRedraw(t *testing.T) {
	t.Parallel()

	// The sequence must not end with a cursor-up: after erasing, the
	// cursor sits at column 0 of the topmost erased row.
	got := EraseLines(2)
	if strings.HasSuffix(got, cursorUp) {
		t.Errorf("EraseLines(2) ends with cursor-up: %q", got)
	}
	if !strings.HasSuffix(got, eraseLine) {
		t.Errorf("EraseLines(2) should end with an erase: %q", got)
	}
}
