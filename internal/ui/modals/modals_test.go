package modals

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/swatch/internal/keys"
	"github.com/zhubert/swatch/internal/palette"
)

// =============================================================================
// HelpState Tests
// =============================================================================

func testSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Selection",
			Shortcuts: []HelpShortcut{
				{Key: "←/→", Desc: "previous/next shade"},
				{Key: "[", Desc: "previous color", Trigger: "["},
			},
		},
		{
			Title: "General",
			Shortcuts: []HelpShortcut{
				{Key: "c", Desc: "copy color code", Trigger: "c"},
			},
		},
	}
}

func TestNewHelpStateFromSections_SelectsFirstShortcut(t *testing.T) {
	state := NewHelpStateFromSections(testSections(), DefaultStyles())

	shortcut := state.GetSelectedShortcut()
	if shortcut == nil {
		t.Fatal("expected a shortcut to be selected initially")
	}
	if shortcut.Key != "←/→" {
		t.Errorf("expected first shortcut selected, got %q", shortcut.Key)
	}
}

func TestHelpState_Navigation(t *testing.T) {
	state := NewHelpStateFromSections(testSections(), DefaultStyles())

	state.Update(keyPress(keys.Down))
	shortcut := state.GetSelectedShortcut()
	if shortcut == nil || shortcut.Trigger != "[" {
		t.Fatalf("expected '[' after down, got %+v", shortcut)
	}

	// Next row is the "General" header
	state.Update(keyPress(keys.Down))
	if state.GetSelectedShortcut() != nil {
		t.Error("section headers should not be returned as shortcuts")
	}
}

func TestHelpState_Render(t *testing.T) {
	state := NewHelpStateFromSections(testSections(), DefaultStyles())
	state.SetSize(50, 20)

	rendered := ansi.Strip(state.Render())
	for _, want := range []string{"Keyboard Shortcuts", "Selection", "copy color code"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered help missing %q", want)
		}
	}
	if state.IsFiltering() {
		t.Error("should not start in filter mode")
	}
}

// =============================================================================
// ShadeCountState Tests
// =============================================================================

func TestShadeCountState_Prefilled(t *testing.T) {
	state := NewShadeCountState(7, 11, DefaultStyles())

	if state.GetValue() != "7" {
		t.Errorf("expected prefilled value 7, got %q", state.GetValue())
	}
	if !strings.Contains(ansi.Strip(state.Render()), "between 1 and 11") {
		t.Error("render should describe the allowed range")
	}
}

func TestShadeCountState_Typing(t *testing.T) {
	state := NewShadeCountState(11, 11, DefaultStyles())

	state.Update(keyPress(keys.Backspace))
	state.Update(keyPress(keys.Backspace))
	state.Update(keyPress("4"))

	if state.GetValue() != "4" {
		t.Errorf("expected typed value 4, got %q", state.GetValue())
	}
}

func TestShadeCountState_AcceptsNonNumeric(t *testing.T) {
	state := NewShadeCountState(1, 11, DefaultStyles())
	state.Update(keyPress(keys.Backspace))
	state.Update(keyPress("x"))

	// Validation happens in the viewer, not the modal
	if state.GetValue() != "x" {
		t.Errorf("expected raw text to be kept, got %q", state.GetValue())
	}
}

// =============================================================================
// FamilyPickerState Tests
// =============================================================================

func TestFamilyPickerState(t *testing.T) {
	families := []string{"rose", "pink", "blue", "green"}
	state := NewFamilyPickerState(families, "blue", DefaultStyles())

	if state.Selected() != "blue" {
		t.Errorf("expected current family preselected, got %q", state.Selected())
	}

	rendered := ansi.Strip(state.Render())
	for _, want := range []string{"Select Color", "Rose", "Green"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered picker missing %q", want)
		}
	}
}

func TestFamilyPickerState_EnterAndEscapeAreIntercepted(t *testing.T) {
	state := NewFamilyPickerState([]string{"rose", "pink"}, "rose", DefaultStyles())

	for _, key := range []string{keys.Enter, keys.Escape} {
		_, cmd := state.Update(keyPress(key))
		if cmd != nil {
			t.Errorf("%s should be left to the app, got a command", key)
		}
	}
	if state.Selected() != "rose" {
		t.Errorf("selection changed to %q", state.Selected())
	}
}

func TestFamilyPickerState_FilterHint(t *testing.T) {
	few := NewFamilyPickerState([]string{"rose", "pink", "blue", "green"}, "rose", DefaultStyles())
	if strings.Contains(few.Help(), "filter") {
		t.Errorf("short list should not advertise filtering: %q", few.Help())
	}

	many := []string{"rose", "pink", "blue", "green", "teal", "lime", "sky", "amber", "stone"}
	long := NewFamilyPickerState(many, "rose", DefaultStyles())
	if !strings.Contains(long.Help(), "/: filter") {
		t.Errorf("long list should advertise filtering: %q", long.Help())
	}
}

func TestFamilyPickerState_TruncatesLongNames(t *testing.T) {
	name := strings.Repeat("a", 80)
	state := NewFamilyPickerState([]string{"rose", name}, "rose", DefaultStyles())

	rendered := ansi.Strip(state.Render())
	if strings.Contains(rendered, palette.DisplayName(name)) {
		t.Error("long family name should be truncated")
	}
	if !strings.Contains(rendered, "Aaaa") || !strings.Contains(rendered, "…") {
		t.Errorf("truncated name missing from picker:\n%s", rendered)
	}
}

// =============================================================================
// AddColorState Tests
// =============================================================================

func TestAddColorState_PrefilledDraft(t *testing.T) {
	state := NewAddColorState("teal", "123 45 67", DefaultStyles())

	name, value := state.GetValues()
	if name != "teal" || value != "123 45 67" {
		t.Errorf("GetValues() = %q, %q", name, value)
	}

	rendered := ansi.Strip(state.Render())
	for _, want := range []string{"Add Color", "New Color Name", "New Color Value"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered form missing %q", want)
		}
	}
}

func TestAddColorState_EnterIsIntercepted(t *testing.T) {
	state := NewAddColorState("", "", DefaultStyles())

	_, cmd := state.Update(keyPress(keys.Enter))
	if cmd != nil {
		t.Error("Enter should be left to the app")
	}
	if name, value := state.GetValues(); name != "" || value != "" {
		t.Errorf("values changed to %q, %q", name, value)
	}
}

// =============================================================================
// Helpers
// =============================================================================

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"teal", 10, "teal"},
		{"seafoam-green", 8, "seafoam…"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestModalStateInterface(t *testing.T) {
	st := DefaultStyles()
	states := []ModalState{
		NewHelpStateFromSections(testSections(), st),
		NewShadeCountState(5, 11, st),
		NewFamilyPickerState([]string{"rose"}, "rose", st),
		NewAddColorState("", "", st),
	}
	for _, s := range states {
		if s.Title() == "" || s.Help() == "" {
			t.Errorf("%T should have a title and help", s)
		}
		if s.Render() == "" {
			t.Errorf("%T rendered nothing", s)
		}
	}
}
