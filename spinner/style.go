package spinner

import "github.com/raphi011/glint/styles"

// Style controls how the animation frame glyph is colored. It is a
// tagged variant: either a named color tag resolved against the active
// theme, or a caller-supplied formatter. The zero value renders with
// the theme's primary color.
type Style struct {
	name string
	fn   func(string) string
}

// Named returns a Style that resolves the tag against the active theme
// at render time. Recognized tags: "primary", "accent", "success" /
// "green", "error" / "red", "warning" / "yellow", "info" / "blue",
// "muted" / "gray". Unrecognized tags render unstyled.
func Named(tag string) Style {
	return Style{name: tag}
}

// Styled returns a Style backed by a custom formatter.
func Styled(fn func(string) string) Style {
	return Style{fn: fn}
}

// render applies the style to the frame glyph. Named tags are looked
// up here, not at construction, so theme changes take effect on the
// next frame.
func (s Style) render(frame string) string {
	if s.fn != nil {
		return s.fn(frame)
	}
	switch s.name {
	case "", "primary":
		return styles.PrimaryStyle.Render(frame)
	case "accent":
		return styles.AccentStyle.Render(frame)
	case "success", "green":
		return styles.SuccessStyle.Render(frame)
	case "error", "red":
		return styles.ErrorStyle.Render(frame)
	case "warning", "yellow":
		return styles.WarningStyle.Render(frame)
	case "info", "blue":
		return styles.InfoStyle.Render(frame)
	case "muted", "gray":
		return styles.MutedStyle.Render(frame)
	default:
		return frame
	}
}
