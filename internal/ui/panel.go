package ui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/swatch/internal/palette"
	"github.com/zhubert/swatch/internal/viewer"
)

// Panel renders the viewer's main card: the family selector, the shade
// count, the swatches, the color code with its preview, and the custom
// color draft.
type Panel struct {
	width  int
	height int
}

// NewPanel creates a new panel
func NewPanel() *Panel {
	return &Panel{}
}

// SetSize sets the outer panel size
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the outer panel width
func (p *Panel) Width() int { return p.width }

// InnerWidth is the width left for content inside the border and padding
func (p *Panel) InnerWidth() int {
	return max(p.width-BorderSize-PanelPaddingWidth, minSwatchWidth+SwatchFrame)
}

// View renders the panel for v.
func (p *Panel) View(v *viewer.Viewer, st Styles) string {
	w := p.InnerWidth()

	sections := []string{
		p.selector(v, st),
		"",
		p.shadeCount(v, st),
		"",
		SwatchesFor(v, w).View(st),
		"",
		p.codeAndPreview(v, w, st),
		"",
		p.draft(v, w, st),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return st.Panel.Render(lipgloss.NewStyle().Width(w).Render(content))
}

func (p *Panel) selector(v *viewer.Viewer, st Styles) string {
	label := st.Label.Render("Select Color")
	families := v.Families()
	pos := v.Palette().Index(v.Color()) + 1
	value := st.Field.Render(palette.DisplayName(v.Color()) + " ▾")
	hint := st.Muted.Render(fmt.Sprintf(" %d/%d  f pick  [/] cycle", pos, len(families)))
	return lipgloss.JoinVertical(lipgloss.Left,
		label,
		lipgloss.JoinHorizontal(lipgloss.Center, value, hint),
	)
}

func (p *Panel) shadeCount(v *viewer.Viewer, st Styles) string {
	label := st.Label.Render("Number of Shades")
	value := st.Field.Render(fmt.Sprintf("%d", v.ShadeCount()))
	hint := st.Muted.Render(fmt.Sprintf(" showing %d  +/- adjust  # type",
		len(v.VisibleShades())))
	return lipgloss.JoinVertical(lipgloss.Left,
		label,
		lipgloss.JoinHorizontal(lipgloss.Center, value, hint),
	)
}

func (p *Panel) codeAndPreview(v *viewer.Viewer, w int, st Styles) string {
	half := max(w/2-1, 1)

	code := lipgloss.JoinVertical(lipgloss.Left,
		st.Label.Render("Color Code"),
		lipgloss.JoinHorizontal(lipgloss.Center,
			st.FieldActive.Render(FitLabel(v.Code(), max(half-12, 1))),
			st.Muted.Render(" c copy"),
		),
	)

	hex, _ := st.Theme.Variable(v.Code())
	preview := lipgloss.JoinVertical(lipgloss.Left,
		st.Label.Render("Color Preview"),
		Block(hex, half, PreviewHeight+1, "no color", st),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(code),
		"  ",
		preview,
	)
}

func (p *Panel) draft(v *viewer.Viewer, w int, st Styles) string {
	name, value := v.Draft()
	fieldWidth := max(w/2-8, 4)
	field := func(label, text string) string {
		shown := FitLabel(text, fieldWidth)
		if text == "" {
			shown = st.Muted.Render("empty")
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			st.Label.Render(label),
			st.Field.Render(shown),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		field("New Color Name", name),
		"  ",
		field("New Color Value", value),
		st.Muted.Render("  a add color"),
	)
}
