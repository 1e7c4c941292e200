package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/swatch/internal/ui/modals"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Error("new modal should be hidden")
	}

	st := NewStyles(LightTheme)
	m.Show(modals.NewShadeCountState(5, 11, st.Modals()))
	if !m.IsVisible() {
		t.Error("modal should be visible after Show")
	}

	m.SetError("bad input")
	if m.GetError() != "bad input" {
		t.Errorf("GetError() = %q", m.GetError())
	}

	m.Hide()
	if m.IsVisible() || m.GetError() != "" {
		t.Error("Hide should clear the state and error")
	}
}

func TestModal_ShowClearsError(t *testing.T) {
	m := NewModal()
	st := NewStyles(LightTheme).Modals()
	m.Show(modals.NewShadeCountState(5, 11, st))
	m.SetError("bad input")

	m.Show(modals.NewShadeCountState(5, 11, st))
	if m.GetError() != "" {
		t.Error("Show should clear a previous error")
	}
}

func TestModal_View(t *testing.T) {
	st := NewStyles(DarkTheme)
	m := NewModal()

	if m.View(80, 24, st) != "" {
		t.Error("hidden modal should render nothing")
	}

	m.Show(modals.NewShadeCountState(5, 11, st.Modals()))
	m.SetError("enter a number")
	plain := ansi.Strip(m.View(80, 24, st))

	if !strings.Contains(plain, "Number of Shades") {
		t.Errorf("modal title missing: %q", plain)
	}
	if !strings.Contains(plain, "enter a number") {
		t.Errorf("modal error missing: %q", plain)
	}
}

func TestModal_ViewSizesHelp(t *testing.T) {
	st := NewStyles(LightTheme)
	help := modals.NewHelpStateFromSections([]modals.HelpSection{
		{Title: "General", Shortcuts: []modals.HelpShortcut{{Key: "q", Desc: "quit", Trigger: "q"}}},
	}, st.Modals())

	m := NewModal()
	m.Show(help)
	if !strings.Contains(ansi.Strip(m.View(80, 24, st)), "quit") {
		t.Error("help modal should list its shortcuts")
	}
}

func TestModal_UpdateWhenHidden(t *testing.T) {
	m := NewModal()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("hidden modal should ignore messages")
	}
}
