// Package viewer implements the palette viewer's state: the palette, the
// selected family and shade, layout and theme modes, the shade-count limit
// and the custom color draft.
//
// Viewer performs no I/O. Clipboard writes, notifications and rendering are
// done by the app layer from the values Viewer exposes.
//
// Invariants maintained by every operation:
//   - the selected color is a family in the palette
//   - the selected shade is one of VisibleShades(), or "" when the selected
//     family has no shades
//   - the shade-count limit is in [1, MaxShadeCount]
package viewer

import (
	"strconv"
	"strings"

	"github.com/zhubert/swatch/internal/errors"
	"github.com/zhubert/swatch/internal/palette"
)

// MaxShadeCount is the largest shade-count limit, one per Tailwind shade.
const MaxShadeCount = 11

// MinShadeCount is the smallest shade-count limit.
const MinShadeCount = 1

// Layout selects how swatches are arranged.
type Layout int

const (
	LayoutGrid Layout = iota
	LayoutStacked
)

func (l Layout) String() string {
	if l == LayoutStacked {
		return "stacked"
	}
	return "grid"
}

// ParseLayout converts "grid" or "stacked" to a Layout.
func ParseLayout(s string) (Layout, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid":
		return LayoutGrid, true
	case "stacked":
		return LayoutStacked, true
	}
	return LayoutGrid, false
}

// Mode is the light/dark theme mode.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// ParseMode converts "light" or "dark" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, true
	case "dark":
		return ModeDark, true
	}
	return ModeLight, false
}

// Options are the startup values of a Viewer. Zero fields take the defaults
// (rose, 500, grid, light, 11).
type Options struct {
	Color      string
	Shade      string
	Layout     Layout
	Mode       Mode
	ShadeCount int
}

// DefaultOptions returns the startup defaults.
func DefaultOptions() Options {
	return Options{
		Color:      "rose",
		Shade:      "500",
		Layout:     LayoutGrid,
		Mode:       ModeLight,
		ShadeCount: MaxShadeCount,
	}
}

// Viewer is the palette viewer state.
type Viewer struct {
	palette    *palette.Palette
	color      string
	shade      string
	layout     Layout
	mode       Mode
	shadeCount int
	draftName  string
	draftValue string
}

// New creates a Viewer over a copy of p, so custom colors never reach the
// caller's palette. Options that do not fit p (an unknown color,
// a shade outside the visible list) fall back to the first family and first
// visible shade.
func New(p *palette.Palette, opts Options) *Viewer {
	defaults := DefaultOptions()
	if opts.Color == "" {
		opts.Color = defaults.Color
	}
	if opts.Shade == "" {
		opts.Shade = defaults.Shade
	}
	if opts.ShadeCount == 0 {
		opts.ShadeCount = defaults.ShadeCount
	}

	v := &Viewer{
		palette: p.Clone(),
		color:   opts.Color,
		shade:   opts.Shade,
		layout:  opts.Layout,
		mode:    opts.Mode,
	}
	if !p.Has(v.color) {
		v.color = ""
		if families := p.Families(); len(families) > 0 {
			v.color = families[0]
		}
	}
	v.shadeCount = clampCount(opts.ShadeCount)
	v.revalidateShade()
	return v
}

// Palette returns the palette the viewer browses.
func (v *Viewer) Palette() *palette.Palette { return v.palette }

// Color returns the selected family name.
func (v *Viewer) Color() string { return v.color }

// Shade returns the selected shade label.
func (v *Viewer) Shade() string { return v.shade }

// Layout returns the swatch layout.
func (v *Viewer) Layout() Layout { return v.layout }

// Mode returns the theme mode.
func (v *Viewer) Mode() Mode { return v.mode }

// ShadeCount returns the shade-count limit as set by the user, in [1, MaxShadeCount].
func (v *Viewer) ShadeCount() int { return v.shadeCount }

// Code returns the identifier of the current selection, "<color>-<shade>".
func (v *Viewer) Code() string {
	return palette.Code(v.color, v.shade)
}

// Families returns the family names offered by the selector.
func (v *Viewer) Families() []string {
	return v.palette.Families()
}

// VisibleShades returns the selected family's first min(limit, len) shades.
func (v *Viewer) VisibleShades() []string {
	shades, _ := v.palette.Shades(v.color)
	if len(shades) > v.shadeCount {
		shades = shades[:v.shadeCount]
	}
	return shades
}

// SelectColor selects the family name. Unknown names are rejected and leave
// the state untouched.
func (v *Viewer) SelectColor(name string) error {
	if !v.palette.Has(name) {
		return errors.FamilyNotFound(name)
	}
	v.color = name
	v.revalidateShade()
	return nil
}

// CycleColor moves the family selection by delta positions, wrapping around.
func (v *Viewer) CycleColor(delta int) {
	families := v.palette.Families()
	if len(families) == 0 {
		return
	}
	i := v.palette.Index(v.color)
	if i < 0 {
		i = 0
	}
	n := len(families)
	i = ((i+delta)%n + n) % n
	v.color = families[i]
	v.revalidateShade()
}

// SetShadeCount sets the shade-count limit, clamped to [MinShadeCount, MaxShadeCount].
func (v *Viewer) SetShadeCount(n int) {
	v.shadeCount = clampCount(n)
	v.revalidateShade()
}

// SetShadeCountText parses free text as a shade count. Non-numeric input is
// rejected with a KindInvalid error; numeric input is clamped.
func (v *Viewer) SetShadeCountText(s string) error {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return errors.InvalidShadeCount(s, err)
	}
	v.SetShadeCount(n)
	return nil
}

// SelectShade selects label, which must be one of VisibleShades().
func (v *Viewer) SelectShade(label string) error {
	for _, s := range v.VisibleShades() {
		if s == label {
			v.shade = label
			return nil
		}
	}
	return errors.ShadeNotFound(v.color, label)
}

// MoveShade moves the shade selection by delta within the visible shades,
// stopping at either end.
func (v *Viewer) MoveShade(delta int) {
	visible := v.VisibleShades()
	if len(visible) == 0 {
		return
	}
	i := indexOf(visible, v.shade)
	if i < 0 {
		i = 0
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(visible) {
		i = len(visible) - 1
	}
	v.shade = visible[i]
}

// ToggleLayout switches between grid and stacked layouts.
func (v *Viewer) ToggleLayout() {
	if v.layout == LayoutGrid {
		v.layout = LayoutStacked
	} else {
		v.layout = LayoutGrid
	}
}

// ToggleMode switches between light and dark themes.
func (v *Viewer) ToggleMode() {
	if v.mode == ModeLight {
		v.mode = ModeDark
	} else {
		v.mode = ModeLight
	}
}

// SetDraft replaces both custom color draft fields.
func (v *Viewer) SetDraft(name, value string) {
	v.draftName = name
	v.draftValue = value
}

// Draft returns the custom color draft.
func (v *Viewer) Draft() (name, value string) {
	return v.draftName, v.draftValue
}

// AddCustomColor commits the draft as a single-shade family, replacing any
// family with the same name. An incomplete draft is ignored and reported as
// false. On success the draft is cleared and the added name is returned.
func (v *Viewer) AddCustomColor() (string, bool) {
	name, value := v.draftName, v.draftValue
	if name == "" || value == "" {
		return "", false
	}
	v.palette.Set(name, []string{value})
	v.draftName, v.draftValue = "", ""
	v.revalidateShade()
	return name, true
}

// revalidateShade keeps the selected shade visible, falling back to the
// first visible shade.
func (v *Viewer) revalidateShade() {
	visible := v.VisibleShades()
	if indexOf(visible, v.shade) >= 0 {
		return
	}
	if len(visible) == 0 {
		v.shade = ""
		return
	}
	v.shade = visible[0]
}

func clampCount(n int) int {
	if n < MinShadeCount {
		return MinShadeCount
	}
	if n > MaxShadeCount {
		return MaxShadeCount
	}
	return n
}

func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}
