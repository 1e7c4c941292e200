package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"github.com/zhubert/swatch/internal/palette"
)

// Export formats
const (
	FormatCSS  = "css"
	FormatJSON = "json"
)

var (
	exportFormat string
	exportPlain  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the palette as CSS variables or JSON",
	Long: `Prints the built-in palette. The css format emits one custom property per
shade holding an "r g b" triple, for use as rgb(var(--blue-500)). The
json format lists each color with its shades, hex values and rgb triples.

Output is syntax highlighted when stdout is a terminal, unless --plain is set.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", FormatCSS, "Output format: css or json")
	exportCmd.Flags().BoolVar(&exportPlain, "plain", false, "Disable syntax highlighting")
	rootCmd.AddCommand(exportCmd)
}

// exportShade is one shade in the JSON export.
type exportShade struct {
	Shade string `json:"shade"`
	Hex   string `json:"hex"`
	RGB   string `json:"rgb"`
}

// exportFamily is one color in the JSON export, shades lightest first.
type exportFamily struct {
	Name   string        `json:"name"`
	Shades []exportShade `json:"shades"`
}

func runExport(cmd *cobra.Command, args []string) error {
	var buf bytes.Buffer
	if err := renderExport(&buf, exportFormat); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exportPlain || !isTerminal(out) {
		_, err := buf.WriteTo(out)
		return err
	}
	return quick.Highlight(out, buf.String(), exportFormat, "terminal256", "monokai")
}

// renderExport writes the default palette to w in format.
func renderExport(w io.Writer, format string) error {
	families, err := exportFamilies()
	if err != nil {
		return err
	}

	switch format {
	case FormatCSS:
		fmt.Fprintln(w, ":root {")
		for _, f := range families {
			for _, s := range f.Shades {
				fmt.Fprintf(w, "  --%s: %s;\n", palette.Code(f.Name, s.Shade), s.RGB)
			}
		}
		fmt.Fprintln(w, "}")
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(families, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatCSS, FormatJSON)
	}
}

func exportFamilies() ([]exportFamily, error) {
	p := palette.Default()
	vars := palette.TailwindVariables()

	var families []exportFamily
	for _, name := range p.Families() {
		shades, _ := p.Shades(name)
		f := exportFamily{Name: name}
		for _, shade := range shades {
			hex := vars[palette.Code(name, shade)]
			rgb, err := palette.RGBTriple(hex)
			if err != nil {
				return nil, err
			}
			f.Shades = append(f.Shades, exportShade{Shade: shade, Hex: hex, RGB: rgb})
		}
		families = append(families, f)
	}
	return families, nil
}
