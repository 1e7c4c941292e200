package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// HelpModalMaxVisible is the number of list rows shown before scrolling
const HelpModalMaxVisible = 14

// helpKeyWidth is the column width of the key in each help row
const helpKeyWidth = 14

// =============================================================================
// HelpState - State for the Help modal with keyboard shortcuts (bubbles list)
// =============================================================================

// HelpShortcutTriggeredMsg is sent when a shortcut is chosen from the help
// modal. Key is the shortcut's Trigger.
type HelpShortcutTriggeredMsg struct {
	Key string
}

// helpShortcutItem wraps a HelpShortcut for use in a bubbles list.
type helpShortcutItem struct {
	shortcut HelpShortcut
}

func (i helpShortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// helpSectionItem represents a section header in the list.
// It is not selectable and not filterable.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

// helpDelegate renders help list items.
type helpDelegate struct {
	st Styles
}

func (d helpDelegate) Height() int                             { return 1 }
func (d helpDelegate) Spacing() int                            { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		title := lipgloss.NewStyle().
			Bold(true).
			Foreground(d.st.Secondary).
			Render(i.title)
		fmt.Fprint(w, title)

	case helpShortcutItem:
		if index == m.Index() {
			key := lipgloss.NewStyle().
				Foreground(d.st.TextInverse).
				Background(d.st.Primary).
				Bold(true).
				Width(helpKeyWidth).
				Render(i.shortcut.Key)
			desc := lipgloss.NewStyle().
				Foreground(d.st.TextInverse).
				Background(d.st.Primary).
				Render(i.shortcut.Desc)
			fmt.Fprint(w, "> "+key+desc)
			return
		}
		key := lipgloss.NewStyle().
			Foreground(d.st.Primary).
			Bold(true).
			Width(helpKeyWidth).
			Render(i.shortcut.Key)
		desc := lipgloss.NewStyle().
			Foreground(d.st.Text).
			Render(i.shortcut.Desc)
		fmt.Fprint(w, "  "+key+desc)
	}
}

// HelpState wraps a bubbles list.Model for the help modal.
type HelpState struct {
	list   list.Model
	styles Styles
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Enter: trigger  Esc: close"
}

func (s *HelpState) Render() string {
	title := s.styles.Title.Render(s.Title())
	content := s.list.View()
	help := s.styles.Help.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize implements ModalWithSize so the modal framework passes dimensions.
func (s *HelpState) SetSize(width, height int) {
	// Reserve space for title (1 line + margin) and help text (1 line + margin)
	const titleAndHelpOverhead = 4
	listHeight := min(max(height-titleAndHelpOverhead, 1), HelpModalMaxVisible)
	s.list.SetSize(width, listHeight)
}

// GetSelectedShortcut returns the currently selected shortcut.
// Returns nil if a section header is selected or the list is empty.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	item := s.list.SelectedItem()
	if item == nil {
		return nil
	}
	if si, ok := item.(helpShortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// IsFiltering returns whether the user is currently typing in the filter.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections creates a HelpState from pre-built sections.
// This allows the shortcut registry to generate sections programmatically.
func NewHelpStateFromSections(sections []HelpSection, st Styles) *HelpState {
	// Build list items: interleave section headers with shortcuts
	var items []list.Item
	for _, section := range sections {
		items = append(items, helpSectionItem{title: section.Title})
		for _, shortcut := range section.Shortcuts {
			items = append(items, helpShortcutItem{shortcut: shortcut})
		}
	}

	l := list.New(items, helpDelegate{st: st}, st.Width, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	// Start selection on the first shortcut item (skip any leading section header)
	for i, item := range items {
		if _, ok := item.(helpShortcutItem); ok {
			l.Select(i)
			break
		}
	}

	return &HelpState{list: l, styles: st}
}
