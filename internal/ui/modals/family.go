package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"

	"github.com/zhubert/swatch/internal/palette"
)

// familyPickerMaxVisible caps the select height for long custom palettes
const familyPickerMaxVisible = 8

// familyPickerLabelPadding leaves room for the select cursor and frame
const familyPickerLabelPadding = 4

// =============================================================================
// FamilyPickerState - State for choosing the displayed color family
// =============================================================================

// FamilyPickerState offers every family in the palette, labeled with its
// display name.
type FamilyPickerState struct {
	form      *huh.Form
	selected  string
	filtering bool
	styles    Styles
}

func (*FamilyPickerState) modalState() {}

func (s *FamilyPickerState) Title() string { return "Select Color" }

func (s *FamilyPickerState) Help() string {
	if s.filtering {
		return "up/down: navigate  /: filter  Enter: select  Esc: cancel"
	}
	return "up/down: navigate  Enter: select  Esc: cancel"
}

func (s *FamilyPickerState) Render() string {
	return renderModal(s.styles, s.Title(), s.form.View(), s.Help())
}

func (s *FamilyPickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted family name.
func (s *FamilyPickerState) Selected() string {
	return s.selected
}

// NewFamilyPickerState creates a picker over families with current highlighted.
func NewFamilyPickerState(families []string, current string, st Styles) *FamilyPickerState {
	s := &FamilyPickerState{
		selected:  current,
		filtering: len(families) > familyPickerMaxVisible,
		styles:    st,
	}

	// Long custom names would wrap inside the select
	labelWidth := max(st.InputWidth-familyPickerLabelPadding, 1)
	options := make([]huh.Option[string], len(families))
	for i, name := range families {
		options[i] = huh.NewOption(TruncateString(palette.DisplayName(name), labelWidth), name)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(options...).
				Height(min(len(families), familyPickerMaxVisible)+1).
				Filtering(s.filtering).
				Value(&s.selected),
		),
	).WithTheme(ModalTheme(st)).
		WithShowHelp(false).
		WithWidth(st.InputWidth)

	initHuhForm(s.form)
	return s
}
