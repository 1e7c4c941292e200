package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View renders the application
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the full screen as a string.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height, m.styles)
	}

	header := m.header.View(m.styles)
	footer := m.footer.View(m.styles)

	panel := lipgloss.Place(
		m.ctx.TerminalWidth, m.ctx.ContentHeight,
		lipgloss.Center, lipgloss.Top,
		m.panel.View(m.viewer, m.styles),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		panel,
		footer,
	)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		return
	}
	m.ctx.UpdateTerminalSize(width, height)

	m.header.SetWidth(m.ctx.TerminalWidth)
	m.footer.SetWidth(m.ctx.TerminalWidth)
	m.panel.SetSize(m.ctx.PanelWidth, m.ctx.ContentHeight)
}
