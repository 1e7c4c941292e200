package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/zhubert/swatch/internal/errors"
	"github.com/zhubert/swatch/internal/palette"
)

// resolveFamily matches name against the built-in families, case-insensitively.
// Unknown names get a "did you mean" hint when one is close.
func resolveFamily(name string) (string, error) {
	p := palette.Default()
	family := strings.ToLower(strings.TrimSpace(name))
	if p.Has(family) {
		return family, nil
	}
	if suggestion, ok := p.Suggest(family); ok {
		return "", fmt.Errorf("%w (did you mean %q?)", errors.FamilyNotFound(name), suggestion)
	}
	return "", fmt.Errorf("%w (choose one of %s)", errors.FamilyNotFound(name), strings.Join(p.Families(), ", "))
}

// resolveShade checks that shade is one of family's shades.
func resolveShade(family, shade string) (string, error) {
	shades, _ := palette.Default().Shades(family)
	shade = strings.TrimSpace(shade)
	for _, s := range shades {
		if s == shade {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w (choose one of %s)", errors.ShadeNotFound(family, shade), strings.Join(shades, ", "))
}

// isTerminal reports whether w writes to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
