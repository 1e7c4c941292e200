package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Styles carries the theme into a modal. The parent ui package builds it
// from the active theme and passes it to each modal constructor.
type Styles struct {
	Title    lipgloss.Style
	Help     lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style

	Primary     color.Color
	Secondary   color.Color
	Text        color.Color
	TextMuted   color.Color
	TextInverse color.Color
	Warning     color.Color

	// Width is the content width inside the modal frame
	Width int
	// InputWidth is the width of text inputs
	InputWidth int
}

// DefaultStyles returns plain styles with no colors, for tests and for
// callers that render a modal before a theme is known.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Help:        lipgloss.NewStyle().Italic(true).MarginTop(1),
		Item:        lipgloss.NewStyle().Padding(0, 1),
		Selected:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Error:       lipgloss.NewStyle().Bold(true),
		Primary:     lipgloss.NoColor{},
		Secondary:   lipgloss.NoColor{},
		Text:        lipgloss.NoColor{},
		TextMuted:   lipgloss.NoColor{},
		TextInverse: lipgloss.NoColor{},
		Warning:     lipgloss.NoColor{},
		Width:       52,
		InputWidth:  44,
	}
}
