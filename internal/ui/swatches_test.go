package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/swatch/internal/palette"
	"github.com/zhubert/swatch/internal/viewer"
)

func newViewer(opts viewer.Options) *viewer.Viewer {
	return viewer.New(palette.Default(), opts)
}

func TestSwatches_GridShowsEveryVisibleShade(t *testing.T) {
	v := newViewer(viewer.Options{Color: "blue", ShadeCount: 4})
	s := SwatchesFor(v, 80)

	plain := ansi.Strip(s.View(NewStyles(LightTheme)))
	for _, shade := range []string{"50", "100", "200", "300"} {
		if !strings.Contains(plain, shade) {
			t.Errorf("grid missing shade %s", shade)
		}
	}
	if strings.Contains(plain, "400") {
		t.Error("grid shows a hidden shade")
	}
}

func TestSwatches_GridColumns(t *testing.T) {
	tests := []struct {
		name   string
		shades int
		width  int
		want   int
	}{
		{"all fit", 11, 200, 11},
		{"wraps", 11, 3 * (minSwatchWidth + SwatchFrame), 3},
		{"at least one", 11, 2, 1},
		{"empty", 0, 80, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Swatches{Shades: palette.DefaultShades[:tt.shades], Width: tt.width}
			if got := s.GridColumns(); got != tt.want {
				t.Errorf("GridColumns() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSwatches_GridFitsWidth(t *testing.T) {
	v := newViewer(viewer.Options{})
	view := SwatchesFor(v, 50).View(NewStyles(LightTheme))

	if w := lipgloss.Width(view); w > 50 {
		t.Errorf("grid width %d exceeds 50", w)
	}
}

func TestSwatches_StackedShowsHex(t *testing.T) {
	v := newViewer(viewer.Options{Color: "blue", Layout: viewer.LayoutStacked, ShadeCount: 6})
	plain := ansi.Strip(SwatchesFor(v, 40).View(NewStyles(DarkTheme)))

	if !strings.Contains(plain, "500  #3b82f6") {
		t.Errorf("stacked row should show the shade and its hex: %q", plain)
	}
	// One row per shade plus its frame
	if got := strings.Count(plain, "\n") + 1; got != 6*(StackedSwatchHeight+SwatchFrame) {
		t.Errorf("stacked view has %d lines", got)
	}
}

func TestSwatches_CustomColorRendersUnstyled(t *testing.T) {
	v := newViewer(viewer.Options{})
	v.SetDraft("teal", "123 45 67")
	v.AddCustomColor()
	if err := v.SelectColor("teal"); err != nil {
		t.Fatal(err)
	}

	plain := ansi.Strip(SwatchesFor(v, 80).View(NewStyles(LightTheme)))
	if !strings.Contains(plain, "123 45 67") {
		t.Errorf("custom shade label missing: %q", plain)
	}
}

func TestSwatches_EmptyFamily(t *testing.T) {
	s := Swatches{Family: "teal", Width: 40}
	plain := ansi.Strip(s.View(NewStyles(LightTheme)))
	if !strings.Contains(plain, "No shades in Teal") {
		t.Errorf("got %q", plain)
	}
}

func TestLabelColor(t *testing.T) {
	if LabelColor("#fff1f2") != labelOnLight {
		t.Error("light swatches should get dark labels")
	}
	if LabelColor("#172554") != labelOnDark {
		t.Error("dark swatches should get light labels")
	}
}

func TestFitLabel(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{"500", 5, "500"},
		{"123 45 67", 5, "123 …"},
		{"500", 0, ""},
	}
	for _, tt := range tests {
		got := FitLabel(tt.label, tt.width)
		if got != tt.want {
			t.Errorf("FitLabel(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
		}
	}
}

func TestBlock(t *testing.T) {
	st := NewStyles(LightTheme)

	filled := Block("#3b82f6", 10, 2, "no color", st)
	if lipgloss.Width(filled) != 10 || lipgloss.Height(filled) != 2 {
		t.Errorf("filled block is %dx%d, want 10x2", lipgloss.Width(filled), lipgloss.Height(filled))
	}

	empty := ansi.Strip(Block("", 20, 3, "no color", st))
	if !strings.Contains(empty, "no color") {
		t.Errorf("placeholder missing: %q", empty)
	}
}
