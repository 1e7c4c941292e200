package modals

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// shadeCountCharLimit allows negative and multi-digit input; the viewer
// clamps the parsed value.
const shadeCountCharLimit = 4

// =============================================================================
// ShadeCountState - State for typing the number of shades
// =============================================================================

// ShadeCountState holds a free-text shade count. Parsing happens in the
// viewer so non-numeric input can be reported.
type ShadeCountState struct {
	Input  textinput.Model
	max    int
	styles Styles
}

func (*ShadeCountState) modalState() {}

func (s *ShadeCountState) Title() string { return "Number of Shades" }

func (s *ShadeCountState) Help() string {
	return "Enter: apply  Esc: cancel"
}

func (s *ShadeCountState) Render() string {
	desc := lipgloss.NewStyle().
		Foreground(s.styles.TextMuted).
		MarginBottom(1).
		Render(fmt.Sprintf("Show between 1 and %d shades per color.", s.max))
	body := lipgloss.JoinVertical(lipgloss.Left, desc, s.Input.View())
	return renderModal(s.styles, s.Title(), body, s.Help())
}

func (s *ShadeCountState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// GetValue returns the typed text
func (s *ShadeCountState) GetValue() string {
	return s.Input.Value()
}

// NewShadeCountState creates the modal prefilled with the current count.
func NewShadeCountState(current, max int, st Styles) *ShadeCountState {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", max)
	ti.CharLimit = shadeCountCharLimit
	ti.SetWidth(st.InputWidth)
	ti.SetValue(fmt.Sprintf("%d", current))
	ti.Focus()

	return &ShadeCountState{
		Input:  ti,
		max:    max,
		styles: st,
	}
}
