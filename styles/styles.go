// Package styles provides shared lipgloss styles for glint components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency between the prompt and spinner packages and any
// caller that wants to match their look.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color variables used throughout the library. These are updated by
// [Init] when a theme is applied.
var (
	// Accent is the highlight color for the active choice and the
	// question symbol (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for failure symbols and aborted prompts (red)
	Error color.Color = lipgloss.Color("196")

	// Warning is used for disabled-choice warnings (yellow/orange)
	Warning color.Color = lipgloss.Color("214")

	// Info is used for informational persisted lines (blue)
	Info color.Color = lipgloss.Color("39")

	// Muted is used for hints and disabled text (gray)
	Muted color.Color = lipgloss.Color("240")

	// Primary is the spinner's default frame color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// InfoStyle applies the info color
	InfoStyle = lipgloss.NewStyle().Foreground(Info)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// SelectedStyle marks the highlighted choice (cyan, underlined)
	SelectedStyle = lipgloss.NewStyle().Foreground(Primary).Underline(true)

	// DisabledStyle marks disabled, non-highlighted choices
	DisabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	// DisabledSelectedStyle marks a highlighted but disabled choice:
	// focused, but not selectable
	DisabledSelectedStyle = lipgloss.NewStyle().Faint(true).Underline(true)
)
