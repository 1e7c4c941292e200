package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/swatch/internal/viewer"
)

// HeaderTitle is the application title shown on the left of the header.
const HeaderTitle = "Tailwind CSS Colors"

// Header represents the top header bar
type Header struct {
	width  int
	layout viewer.Layout
	mode   viewer.Mode
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetModes sets the layout and theme indicators shown on the right
func (h *Header) SetModes(layout viewer.Layout, mode viewer.Mode) {
	h.layout = layout
	h.mode = mode
}

// indicators returns the plain right-hand text, e.g. "grid · light".
func (h *Header) indicators() string {
	return h.layout.String() + " · " + h.mode.String()
}

// View renders the header
func (h *Header) View(st Styles) string {
	titleText := " " + HeaderTitle
	rightText := h.indicators() + " "

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 1 {
		// Not enough room for both; the title wins
		rightText = ""
		paddingLen = h.width - runewidth.StringWidth(titleText)
	}
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	if h.width > 0 {
		fullContent = runewidth.Truncate(fullContent, h.width, "")
	}

	return renderGradient(fullContent, runewidth.StringWidth(titleText), st)
}

// renderGradient renders content over a background fading from the theme's
// primary color to its background. The first titleWidth columns are bold;
// the rest use the muted text color.
func renderGradient(content string, titleWidth int, st Styles) string {
	if content == "" {
		return ""
	}

	start, err := colorful.Hex(st.Theme.Primary)
	if err != nil {
		return st.HeaderTitle.Render(content)
	}
	end, err := colorful.Hex(st.Theme.Bg)
	if err != nil {
		end = start
	}

	textColor := lipgloss.Color(st.Theme.Text)
	mutedColor := lipgloss.Color(st.Theme.TextMuted)

	width := runewidth.StringWidth(content)
	var result strings.Builder
	col := 0
	for _, r := range content {
		t := float64(col) / float64(width)
		bg := lipgloss.Color(start.BlendRgb(end, t).Hex())

		style := lipgloss.NewStyle().Background(bg)
		if col < titleWidth {
			style = style.Bold(true).Foreground(textColor)
		} else {
			style = style.Foreground(mutedColor)
		}
		result.WriteString(style.Render(string(r)))
		col += runewidth.RuneWidth(r)
	}

	return result.String()
}
