package ui

import (
	"testing"

	"github.com/zhubert/swatch/internal/viewer"
)

func TestThemeFor(t *testing.T) {
	if ThemeFor(viewer.ModeLight).Name != LightTheme.Name {
		t.Error("light mode should use LightTheme")
	}
	if ThemeFor(viewer.ModeDark).Name != DarkTheme.Name {
		t.Error("dark mode should use DarkTheme")
	}
}

func TestTheme_Variable(t *testing.T) {
	for _, theme := range []Theme{LightTheme, DarkTheme} {
		hex, ok := theme.Variable("blue-500")
		if !ok || hex != "#3b82f6" {
			t.Errorf("%s: Variable(blue-500) = %q, %v", theme.Name, hex, ok)
		}
		if _, ok := theme.Variable("teal-123 45 67"); ok {
			t.Errorf("%s: custom colors have no variable", theme.Name)
		}
	}
}

func TestTheme_Defaults(t *testing.T) {
	theme := Theme{Primary: "#111111"}
	if theme.GetBgSelected() != "#111111" {
		t.Errorf("GetBgSelected() = %q, want Primary", theme.GetBgSelected())
	}
	if theme.GetBorderFocus() != "#111111" {
		t.Errorf("GetBorderFocus() = %q, want Primary", theme.GetBorderFocus())
	}

	theme.BgSelected = "#222222"
	if theme.GetBgSelected() != "#222222" {
		t.Errorf("GetBgSelected() = %q, want explicit value", theme.GetBgSelected())
	}
}

func TestNewStyles_CarriesTheme(t *testing.T) {
	st := NewStyles(DarkTheme)
	if st.Theme.Name != DarkTheme.Name {
		t.Errorf("Styles.Theme = %q", st.Theme.Name)
	}

	ms := st.Modals()
	if ms.Width != ModalWidth-ModalFrameWidth {
		t.Errorf("modal width = %d", ms.Width)
	}
	if ms.InputWidth != ModalInputWidth {
		t.Errorf("modal input width = %d", ms.InputWidth)
	}
}
