package modals

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/swatch/internal/keys"
)

// initHuhForm initializes a huh form eagerly so it renders correctly
// immediately. Call this in every modal constructor after creating the form.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate is the common Update logic for huh-based modals.
// It intercepts Enter and Escape (handled by the app-layer modal handlers)
// and delegates everything else to the huh form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			// Don't let huh handle these; the app-layer modal handlers do
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	form = m.(*huh.Form)
	return form, cmd
}

// ModalTheme returns a huh theme built from the modal styles.
func ModalTheme(st Styles) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		// Focused field styles: active field with left border indicator
		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(st.Primary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(st.Text).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(st.TextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(st.Warning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(st.Warning)

		// Select styles
		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(st.Primary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(st.Primary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(st.Primary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(st.Text)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(st.Secondary)

		// Text input styles
		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(st.Primary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(st.TextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(st.Primary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(st.Text)

		// Blurred field styles: inactive field with hidden border
		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().
			PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		// Group styles
		t.Group.Title = lipgloss.NewStyle().Foreground(st.Secondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(st.TextMuted)

		// Minimal field separator
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")

		// Help styles
		t.Help = help.New().Styles

		return t
	})
}
