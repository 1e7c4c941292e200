package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
)

// Character limits for the custom color fields
const (
	ColorNameCharLimit  = 32
	ColorValueCharLimit = 32
)

// =============================================================================
// AddColorState - State for adding a custom color family
// =============================================================================

// AddColorState edits the custom color draft: a family name and the single
// shade it will hold.
type AddColorState struct {
	form   *huh.Form
	name   string
	value  string
	styles Styles
}

func (*AddColorState) modalState() {}

func (s *AddColorState) Title() string { return "Add Color" }

func (s *AddColorState) Help() string {
	return "Tab: next field  Enter: add  Esc: keep draft and close"
}

func (s *AddColorState) Render() string {
	return renderModal(s.styles, s.Title(), s.form.View(), s.Help())
}

func (s *AddColorState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetValues returns the draft name and value as typed.
func (s *AddColorState) GetValues() (name, value string) {
	return s.name, s.value
}

// NewAddColorState creates the form prefilled with an existing draft.
func NewAddColorState(name, value string, st Styles) *AddColorState {
	s := &AddColorState{
		name:   name,
		value:  value,
		styles: st,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New Color Name").
				Description("An existing name is replaced").
				Placeholder("teal").
				CharLimit(ColorNameCharLimit).
				Value(&s.name),
			huh.NewInput().
				Title("New Color Value").
				Description("Becomes the color's only shade").
				Placeholder("123 45 67").
				CharLimit(ColorValueCharLimit).
				Value(&s.value),
		),
	).WithTheme(ModalTheme(st)).
		WithShowHelp(false).
		WithWidth(st.InputWidth).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
