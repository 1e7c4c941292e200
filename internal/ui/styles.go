package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/swatch/internal/ui/modals"
)

// Styles holds every lipgloss style derived from one Theme. Build it with
// NewStyles whenever the theme changes and pass it to the renderers.
type Styles struct {
	Theme Theme

	// Header
	HeaderTitle lipgloss.Style
	HeaderMeta  lipgloss.Style

	// Footer
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
	FooterSep  lipgloss.Style

	// Panel
	Panel       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	Field       lipgloss.Style
	FieldActive lipgloss.Style

	// Swatches
	Swatch         lipgloss.Style
	SwatchSelected lipgloss.Style
	SwatchEmpty    lipgloss.Style

	// Flash messages
	FlashError   lipgloss.Style
	FlashWarning lipgloss.Style
	FlashInfo    lipgloss.Style
	FlashSuccess lipgloss.Style
	FlashTitle   lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	ModalHelp  lipgloss.Style
	StatusErr  lipgloss.Style
}

// NewStyles derives all styles from t.
func NewStyles(t Theme) Styles {
	primary := lipgloss.Color(t.Primary)
	secondary := lipgloss.Color(t.Secondary)
	text := lipgloss.Color(t.Text)
	muted := lipgloss.Color(t.TextMuted)
	border := lipgloss.Color(t.Border)
	focus := lipgloss.Color(t.GetBorderFocus())

	return Styles{
		Theme: t,

		HeaderTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		HeaderMeta: lipgloss.NewStyle().
			Foreground(muted),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		FooterKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),
		FooterDesc: lipgloss.NewStyle().
			Foreground(muted),
		FooterSep: lipgloss.NewStyle().
			Foreground(border),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		Value: lipgloss.NewStyle().
			Foreground(text),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Foreground(text).
			Padding(0, 1),
		FieldActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(focus).
			Foreground(text).
			Padding(0, 1),

		Swatch: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Align(lipgloss.Center),
		SwatchSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(primary).
			Align(lipgloss.Center),
		SwatchEmpty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		FlashError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),
		FlashWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
		FlashInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),
		FlashSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		FlashTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(ModalWidth),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),
		ModalHelp: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true).
			MarginTop(1),
		StatusErr: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),
	}
}

// Modals returns the subset of styles the modal states render with.
func (s Styles) Modals() modals.Styles {
	t := s.Theme
	return modals.Styles{
		Title: s.ModalTitle,
		Help:  s.ModalHelp,
		Item: lipgloss.NewStyle().
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.GetBgSelected())).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),
		Error: s.StatusErr,

		Primary:     lipgloss.Color(t.Primary),
		Secondary:   lipgloss.Color(t.Secondary),
		Text:        lipgloss.Color(t.Text),
		TextMuted:   lipgloss.Color(t.TextMuted),
		TextInverse: lipgloss.Color(t.TextInverse),
		Warning:     lipgloss.Color(t.Warning),

		Width:      ModalWidth - ModalFrameWidth,
		InputWidth: ModalInputWidth,
	}
}
