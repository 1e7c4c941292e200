package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/swatch/internal/keys"
	"github.com/zhubert/swatch/internal/logger"
	"github.com/zhubert/swatch/internal/ui"
	"github.com/zhubert/swatch/internal/ui/modals"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case ClipboardResultMsg:
		return m.handleClipboardResult(msg)

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	// Everything else (cursor blinks, form internals) belongs to the modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.WithComponent("app").Debug("key pressed", "key", key, "modal", m.modal.IsVisible())

	// ctrl+c always quits, even from a modal
	if key == keys.CtrlC {
		return m.quit()
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Esc dismisses the notification
	if key == keys.Escape {
		if m.footer.HasFlash() {
			m.footer.ClearFlash()
		}
		return m, nil
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return m, nil
}

// handleFlashTick clears an expired flash, or keeps ticking while one shows.
func (m *Model) handleFlashTick() tea.Cmd {
	if m.footer.ClearIfExpired() {
		return nil
	}
	if m.footer.HasFlash() {
		return ui.FlashTick()
	}
	return nil
}
