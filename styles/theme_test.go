package styles

import (
	"slices"
	"testing"

	"charm.land/lipgloss/v2"
)

// Theme and symbol state are package globals, so these tests run
// sequentially and restore the default theme when done.

func restoreDefaults(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Init(ThemeConfig{Name: "default"})
	})
}

func TestThemeNames(t *testing.T) {
	want := []string{"default", "dracula", "none"}
	if got := ThemeNames(); !slices.Equal(got, want) {
		t.Errorf("ThemeNames() = %v, want %v", got, want)
	}
}

func TestInitPreset(t *testing.T) {
	restoreDefaults(t)

	Init(ThemeConfig{Name: "dracula"})
	if Current() != DraculaTheme {
		t.Error("Init(dracula) did not install the dracula theme")
	}
	if Success != DraculaTheme.Success {
		t.Error("Success color var not updated with the theme")
	}
}

func TestInitNone(t *testing.T) {
	restoreDefaults(t)

	Init(ThemeConfig{Name: "none"})
	if Current() != NoneTheme {
		t.Error("Init(none) did not install the none theme")
	}
	if _, ok := Accent.(lipgloss.NoColor); !ok {
		t.Errorf("Accent = %v, want NoColor", Accent)
	}
}

func TestInitUnknownFallsBack(t *testing.T) {
	restoreDefaults(t)

	Init(ThemeConfig{Name: "solarized"})
	if Current() != DefaultTheme {
		t.Error("unknown theme should fall back to default")
	}
}

func TestInitOverrides(t *testing.T) {
	restoreDefaults(t)

	Init(ThemeConfig{Name: "default", Success: "#50fa7b", Muted: "245"})

	cur := Current()
	if cur.Success != lipgloss.Color("#50fa7b") {
		t.Errorf("Success = %v, want override", cur.Success)
	}
	if cur.Muted != lipgloss.Color("245") {
		t.Errorf("Muted = %v, want override", cur.Muted)
	}
	// Untouched colors keep the preset value
	if cur.Accent != DefaultTheme.Accent {
		t.Errorf("Accent = %v, want preset value", cur.Accent)
	}
}

func TestInitNerdfont(t *testing.T) {
	restoreDefaults(t)

	Init(ThemeConfig{Name: "default", Nerdfont: true})
	if !NerdfontEnabled() {
		t.Error("Init with Nerdfont should enable nerdfont symbols")
	}

	Init(ThemeConfig{Name: "default"})
	if NerdfontEnabled() {
		t.Error("Init without Nerdfont should disable nerdfont symbols")
	}
}
