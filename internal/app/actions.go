package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/swatch/internal/logger"
	"github.com/zhubert/swatch/internal/notification"
	"github.com/zhubert/swatch/internal/ui"
)

// copyCurrentCode writes the selected color code to the terminal clipboard
// (OSC 52) and to the system clipboard. The confirmation waits for the
// system write; see handleClipboardResult.
func (m *Model) copyCurrentCode() tea.Cmd {
	code := m.viewer.Code()
	writer := m.clipboard
	logger.WithComponent("app").Info("copying color code", "code", code)

	return tea.Batch(
		tea.SetClipboard(code),
		func() tea.Msg {
			return ClipboardResultMsg{Code: code, Err: writer.WriteText(code)}
		},
	)
}

func (m *Model) handleClipboardResult(msg ClipboardResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.WithComponent("app").Warn("system clipboard write failed", "code", msg.Code, "error", msg.Err)
		return m, m.ShowFlashWarning(msg.Code + " was only sent to the terminal clipboard.")
	}

	return m, tea.Batch(
		m.ShowNotice(notification.CopiedTitle, notification.CopiedMessage(msg.Code), ui.FlashSuccess),
		m.desktopNotify(notification.CopiedTitle, notification.CopiedMessage(msg.Code)),
	)
}

// addCustomColor stores the draft in the viewer and adds it to the palette.
// It reports false, leaving the draft in place, when either field is empty.
func (m *Model) addCustomColor(name, value string) (tea.Cmd, bool) {
	m.viewer.SetDraft(name, value)
	added, ok := m.viewer.AddCustomColor()
	if !ok {
		return nil, false
	}

	logger.WithComponent("app").Info("custom color added", "name", added, "value", value)
	return tea.Batch(
		m.ShowNotice(notification.ColorAddedTitle, notification.ColorAddedMessage(added), ui.FlashSuccess),
		m.desktopNotify(notification.ColorAddedTitle, notification.ColorAddedMessage(added)),
	), true
}

// desktopNotify mirrors a notice as a desktop notification when enabled.
// Failures are logged only.
func (m *Model) desktopNotify(title, message string) tea.Cmd {
	if !m.config.GetNotificationsEnabled() || m.notify == nil {
		return nil
	}
	notify := m.notify
	return func() tea.Msg {
		if err := notify(title, message); err != nil {
			logger.WithComponent("app").Warn("desktop notification failed", "error", err)
		}
		return nil
	}
}

// quit exits the program. Nothing is saved: the preferences file only
// supplies startup defaults.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
