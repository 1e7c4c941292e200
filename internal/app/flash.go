package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/swatch/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowNotice displays a titled flash message for the default duration
func (m *Model) ShowNotice(title, text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetNotice(title, text, flashType, ui.DefaultFlashDuration)
	return ui.FlashTick()
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}
