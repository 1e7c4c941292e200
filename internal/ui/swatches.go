package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/swatch/internal/palette"
	"github.com/zhubert/swatch/internal/viewer"
)

// minSwatchWidth is the narrowest grid cell, wide enough for "950"
const minSwatchWidth = 5

// Label colors drawn over a swatch, picked by the swatch's lightness
const (
	labelOnLight = "#111827"
	labelOnDark  = "#FFFFFF"
)

// Swatches renders the visible shades of one family.
type Swatches struct {
	Family   string
	Shades   []string
	Selected string
	Layout   viewer.Layout
	Width    int
}

// SwatchesFor captures the viewer state needed to draw its swatches.
func SwatchesFor(v *viewer.Viewer, width int) Swatches {
	return Swatches{
		Family:   v.Color(),
		Shades:   v.VisibleShades(),
		Selected: v.Shade(),
		Layout:   v.Layout(),
		Width:    width,
	}
}

// GridColumns returns how many swatches fit on one grid row.
func (s Swatches) GridColumns() int {
	n := len(s.Shades)
	if n == 0 {
		return 0
	}
	cols := s.Width / (minSwatchWidth + SwatchFrame)
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	return cols
}

// View renders the swatches in their layout.
func (s Swatches) View(st Styles) string {
	if len(s.Shades) == 0 {
		return st.SwatchEmpty.Render("No shades in " + palette.DisplayName(s.Family))
	}
	if s.Layout == viewer.LayoutStacked {
		return s.stacked(st)
	}
	return s.grid(st)
}

func (s Swatches) grid(st Styles) string {
	cols := s.GridColumns()
	cellWidth := s.Width/cols - SwatchFrame
	if cellWidth < 1 {
		cellWidth = 1
	}

	var rows []string
	for start := 0; start < len(s.Shades); start += cols {
		end := min(start+cols, len(s.Shades))
		var cells []string
		for _, shade := range s.Shades[start:end] {
			cells = append(cells, s.cell(shade, shade, cellWidth, SwatchHeight, lipgloss.Center, st))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s Swatches) stacked(st Styles) string {
	cellWidth := s.Width - SwatchFrame
	if cellWidth < 1 {
		cellWidth = 1
	}

	var rows []string
	for _, shade := range s.Shades {
		code := palette.Code(s.Family, shade)
		label := " " + shade
		if hex, ok := st.Theme.Variable(code); ok {
			label += "  " + hex
		}
		rows = append(rows, s.cell(shade, label, cellWidth, StackedSwatchHeight, lipgloss.Left, st))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cell draws one swatch: a block filled with the shade's color, framed by a
// border that is only visible on the selected swatch.
func (s Swatches) cell(shade, label string, width, height int, align lipgloss.Position, st Styles) string {
	code := palette.Code(s.Family, shade)

	fill := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(align, lipgloss.Center)
	if hex, ok := st.Theme.Variable(code); ok {
		fill = fill.
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(LabelColor(hex)))
	}

	block := fill.Render(FitLabel(label, width))

	frame := st.Swatch
	if shade == s.Selected {
		frame = st.SwatchSelected
	}
	return frame.Render(block)
}

// LabelColor returns a text color readable on the background hex.
func LabelColor(hex string) string {
	if palette.IsLight(hex) {
		return labelOnLight
	}
	return labelOnDark
}

// FitLabel truncates label to at most width terminal columns.
func FitLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(label) <= width {
		return label
	}
	return runewidth.Truncate(label, width, "…")
}

// Block renders a width×height block filled with hex, or an outlined
// placeholder when hex is empty.
func Block(hex string, width, height int, placeholder string, st Styles) string {
	width = max(width, 1)
	height = max(height, 1)
	if hex == "" {
		inner := max(width-BorderSize, 1)
		body := FitLabel(placeholder, inner) + strings.Repeat("\n", max(height-BorderSize, 1)-1)
		return st.Field.Padding(0).Render(st.SwatchEmpty.Width(inner).Render(body))
	}
	line := strings.Repeat(" ", width)
	body := strings.TrimSuffix(strings.Repeat(line+"\n", height), "\n")
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(body)
}
