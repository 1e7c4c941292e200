package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// tailwind holds the Tailwind CSS values of the default families, keyed by code.
var tailwind = map[string]string{
	"rose-50":  "#fff1f2",
	"rose-100": "#ffe4e6",
	"rose-200": "#fecdd3",
	"rose-300": "#fda4af",
	"rose-400": "#fb7185",
	"rose-500": "#f43f5e",
	"rose-600": "#e11d48",
	"rose-700": "#be123c",
	"rose-800": "#9f1239",
	"rose-900": "#881337",
	"rose-950": "#4c0519",

	"pink-50":  "#fdf2f8",
	"pink-100": "#fce7f3",
	"pink-200": "#fbcfe8",
	"pink-300": "#f9a8d4",
	"pink-400": "#f472b6",
	"pink-500": "#ec4899",
	"pink-600": "#db2777",
	"pink-700": "#be185d",
	"pink-800": "#9d174d",
	"pink-900": "#831843",
	"pink-950": "#500724",

	"blue-50":  "#eff6ff",
	"blue-100": "#dbeafe",
	"blue-200": "#bfdbfe",
	"blue-300": "#93c5fd",
	"blue-400": "#60a5fa",
	"blue-500": "#3b82f6",
	"blue-600": "#2563eb",
	"blue-700": "#1d4ed8",
	"blue-800": "#1e40af",
	"blue-900": "#1e3a8a",
	"blue-950": "#172554",

	"green-50":  "#f0fdf4",
	"green-100": "#dcfce7",
	"green-200": "#bbf7d0",
	"green-300": "#86efac",
	"green-400": "#4ade80",
	"green-500": "#22c55e",
	"green-600": "#16a34a",
	"green-700": "#15803d",
	"green-800": "#166534",
	"green-900": "#14532d",
	"green-950": "#052e16",
}

// TailwindVariables returns a copy of the Tailwind color variables, code -> hex.
func TailwindVariables() map[string]string {
	vars := make(map[string]string, len(tailwind))
	for k, v := range tailwind {
		vars[k] = v
	}
	return vars
}

// RGBTriple converts a hex color to the space-separated "r g b" form used by
// CSS variables consumed as rgb(var(--name)).
func RGBTriple(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("%d %d %d", r, g, b), nil
}

// IsLight reports whether text drawn on hex should be dark to stay readable.
func IsLight(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l > 0.6
}
