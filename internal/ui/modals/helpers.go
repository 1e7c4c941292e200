package modals

import (
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// renderModal stacks a modal's title, body and help line.
func renderModal(st Styles, title, body, help string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(title),
		body,
		st.Help.Render(help),
	)
}

// TruncateString truncates a string to maxWidth terminal columns with an ellipsis
func TruncateString(s string, maxWidth int) string {
	return runewidth.Truncate(s, maxWidth, "…")
}
