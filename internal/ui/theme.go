// Package ui provides theme management for the application.
// A Theme is chosen from the viewer's light/dark mode and passed explicitly
// to every renderer; nothing in the package holds a current theme.
package ui

import (
	"github.com/zhubert/swatch/internal/palette"
	"github.com/zhubert/swatch/internal/viewer"
)

// Theme defines a complete color palette for one viewer mode.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for keys, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Success string
	Warning string
	Error   string
	Info    string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Variables maps a color code ("blue-500") to the hex color it renders
	// with. Codes without an entry render unstyled.
	Variables map[string]string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// Variable returns the hex color for a color code.
func (t Theme) Variable(code string) (string, bool) {
	hex, ok := t.Variables[code]
	return hex, ok
}

// tailwindVariables is shared read-only by both themes; the Tailwind
// palette does not change between modes.
var tailwindVariables = palette.TailwindVariables()

// LightTheme is used in light mode.
var LightTheme = Theme{
	Name:        "Light",
	Primary:     "#6366F1",
	Secondary:   "#0891B2",
	Bg:          "#FFFFFF",
	BgSelected:  "#E0E7FF",
	Text:        "#1F2937",
	TextMuted:   "#6B7280",
	TextInverse: "#FFFFFF",
	Success:     "#059669",
	Warning:     "#D97706",
	Error:       "#DC2626",
	Info:        "#0891B2",
	Border:      "#D1D5DB",
	BorderFocus: "#6366F1",
	Variables:   tailwindVariables,
}

// DarkTheme is used in dark mode.
var DarkTheme = Theme{
	Name:        "Dark",
	Primary:     "#7C3AED",
	Secondary:   "#06B6D4",
	Bg:          "#1F2937",
	BgSelected:  "#4C1D95",
	Text:        "#F9FAFB",
	TextMuted:   "#9CA3AF",
	TextInverse: "#1F2937",
	Success:     "#10B981",
	Warning:     "#F59E0B",
	Error:       "#EF4444",
	Info:        "#06B6D4",
	Border:      "#374151",
	Variables:   tailwindVariables,
}

// ThemeFor returns the theme for a viewer mode.
func ThemeFor(mode viewer.Mode) Theme {
	if mode == viewer.ModeDark {
		return DarkTheme
	}
	return LightTheme
}
