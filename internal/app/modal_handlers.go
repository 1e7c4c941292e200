package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/swatch/internal/errors"
	"github.com/zhubert/swatch/internal/keys"
	"github.com/zhubert/swatch/internal/logger"
	"github.com/zhubert/swatch/internal/ui/modals"
	"github.com/zhubert/swatch/internal/viewer"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.FamilyPickerState:
		return m.handleFamilyPickerModal(key, msg, s)
	case *modals.ShadeCountState:
		return m.handleShadeCountModal(key, msg, s)
	case *modals.AddColorState:
		return m.handleAddColorModal(key, msg, s)
	}

	// Unknown modal: forward the key
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil && shortcut.Trigger != "" {
			trigger := shortcut.Trigger
			m.modal.Hide()
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: trigger}
			}
		}
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger executes a shortcut chosen from the help modal.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	result, cmd, _ := m.ExecuteShortcut(key)
	return result, cmd
}

// handleFamilyPickerModal handles key events for the color picker.
func (m *Model) handleFamilyPickerModal(key string, msg tea.KeyPressMsg, state *modals.FamilyPickerState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if err := m.viewer.SelectColor(state.Selected()); err != nil {
			// The picker only offers palette keys
			logger.WithComponent("app").Error("picker selected unknown color", "error", err)
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleShadeCountModal handles key events for the shade count input.
func (m *Model) handleShadeCountModal(key string, msg tea.KeyPressMsg, state *modals.ShadeCountState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		input := state.GetValue()
		if err := m.viewer.SetShadeCountText(input); err != nil {
			if errors.Is(err, errors.KindInvalid) {
				m.modal.SetError(fmt.Sprintf("%q is not a number between %d and %d",
					input, viewer.MinShadeCount, viewer.MaxShadeCount))
				return m, nil
			}
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleAddColorModal handles key events for the custom color form.
func (m *Model) handleAddColorModal(key string, msg tea.KeyPressMsg, state *modals.AddColorState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		// Keep what was typed as the draft
		m.viewer.SetDraft(state.GetValues())
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		cmd, ok := m.addCustomColor(state.GetValues())
		if !ok {
			m.modal.SetError("Both a name and a value are required")
			return m, nil
		}
		m.modal.Hide()
		return m, cmd
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
