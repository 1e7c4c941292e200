// Package palette holds the color families the viewer browses.
//
// A Palette maps a family name ("rose") to its ordered shade labels
// ("50".."950"). Families keep insertion order for display; replacing an
// existing family keeps its position.
package palette

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/rivo/uniseg"
)

// DefaultShades are the Tailwind shade labels, lightest first.
var DefaultShades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// DefaultFamilies are the families every palette starts with, in display order.
var DefaultFamilies = []string{"rose", "pink", "blue", "green"}

// Palette is an ordered mapping of family name to shade labels.
// The zero value is not usable; call New or Default.
type Palette struct {
	order  []string
	shades map[string][]string
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{shades: make(map[string][]string)}
}

// Default returns the startup palette: every default family with all default shades.
func Default() *Palette {
	p := New()
	for _, name := range DefaultFamilies {
		p.Set(name, DefaultShades)
	}
	return p
}

// Set stores shades under name, replacing the family's whole shade list if it
// already exists. It reports whether an existing family was replaced.
func (p *Palette) Set(name string, shades []string) bool {
	_, exists := p.shades[name]
	if !exists {
		p.order = append(p.order, name)
	}
	p.shades[name] = append([]string(nil), shades...)
	return exists
}

// Shades returns a copy of the shade labels for name.
func (p *Palette) Shades(name string) ([]string, bool) {
	s, ok := p.shades[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), s...), true
}

// Has reports whether name is a family in the palette.
func (p *Palette) Has(name string) bool {
	_, ok := p.shades[name]
	return ok
}

// Families returns family names in display order.
func (p *Palette) Families() []string {
	return append([]string(nil), p.order...)
}

// Len returns the number of families.
func (p *Palette) Len() int {
	return len(p.order)
}

// Index returns the display position of name, or -1.
func (p *Palette) Index(name string) int {
	for i, n := range p.order {
		if n == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the palette.
func (p *Palette) Clone() *Palette {
	c := New()
	for _, name := range p.order {
		c.Set(name, p.shades[name])
	}
	return c
}

// Suggest returns the family closest to name by edit distance, if any family
// is close enough to be a plausible typo.
func (p *Palette) Suggest(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", -1
	for _, family := range p.order {
		d := levenshtein.ComputeDistance(name, strings.ToLower(family))
		if bestDist < 0 || d < bestDist {
			best, bestDist = family, d
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(name) {
		return "", false
	}
	return best, true
}

func maxSuggestDistance(name string) int {
	if n := uniseg.GraphemeClusterCount(name) / 3; n > 2 {
		return n
	}
	return 2
}

// Code returns the identifier for a shade, "<color>-<shade>".
func Code(color, shade string) string {
	return color + "-" + shade
}

// DisplayName capitalizes the first user-perceived character of name.
func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(name, -1)
	return strings.ToUpper(first) + rest
}
