package styles

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for prompt and spinner rendering
type Theme struct {
	Accent  color.Color // question symbol, highlighted choice pointer
	Success color.Color // success symbol, succeeded spinner lines
	Error   color.Color // failure symbol, aborted prompts
	Warning color.Color // disabled-choice warning, spinner warnings
	Info    color.Color // informational spinner lines
	Muted   color.Color // hints, delimiters
	Primary color.Color // spinner frames, highlighted choice text
}

// ThemeConfig selects a preset theme and optional overrides.
type ThemeConfig struct {
	Name     string // preset name: "default", "none", "dracula"
	Nerdfont bool   // use nerd font symbols

	// Individual color overrides (empty = use preset)
	Accent  string
	Success string
	Error   string
	Warning string
	Info    string
	Muted   string
	Primary string
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Warning: lipgloss.Color("214"), // orange
		Info:    lipgloss.Color("39"),  // blue
		Muted:   lipgloss.Color("240"), // dark gray
		Primary: lipgloss.Color("62"),  // cyan/teal
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Success: lipgloss.Color("#50fa7b"), // green
		Error:   lipgloss.Color("#ff5555"), // red
		Warning: lipgloss.Color("#ffb86c"), // orange
		Info:    lipgloss.Color("#8be9fd"), // cyan
		Muted:   lipgloss.Color("#6272a4"), // comment
		Primary: lipgloss.Color("#bd93f9"), // purple
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	// Formatting (bold/underline/strikethrough) is preserved
	NoneTheme = Theme{
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Primary: lipgloss.NoColor{},
	}
)

// themes maps theme names to their definitions
var themes = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"none":    NoneTheme,
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// ThemeNames returns the available preset names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Init initializes the theme from config.
// Call this after loading config and before rendering any component.
func Init(cfg ThemeConfig) {
	theme, ok := themes[cfg.Name]
	if !ok {
		if cfg.Name != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default (available: %s)\n",
				cfg.Name, strings.Join(ThemeNames(), ", "))
		}
		theme = DefaultTheme
	}

	// Override individual colors if specified
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Success != "" {
		theme.Success = lipgloss.Color(cfg.Success)
	}
	if cfg.Error != "" {
		theme.Error = lipgloss.Color(cfg.Error)
	}
	if cfg.Warning != "" {
		theme.Warning = lipgloss.Color(cfg.Warning)
	}
	if cfg.Info != "" {
		theme.Info = lipgloss.Color(cfg.Info)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}

	currentTheme = theme
	applyTheme(theme)
	SetNerdfont(cfg.Nerdfont)
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Warning = t.Warning
	Info = t.Info
	Muted = t.Muted
	Primary = t.Primary

	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	SelectedStyle = lipgloss.NewStyle().Foreground(t.Primary).Underline(true)
}
