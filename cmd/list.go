package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/swatch/internal/palette"
	"github.com/zhubert/swatch/internal/ui"
)

var listShades int

var listCmd = &cobra.Command{
	Use:   "list [color]",
	Short: "Print the palette, or one color's shades",
	Long: `Prints every shade of the built-in colors with its hex value. When stdout is
a terminal each row starts with a swatch of the color.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listShades, "shades", "n", len(palette.DefaultShades), "Number of shades per color (1-11)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	families := palette.Default().Families()
	if len(args) == 1 {
		family, err := resolveFamily(args[0])
		if err != nil {
			return err
		}
		families = []string{family}
	}

	if listShades < 1 || listShades > len(palette.DefaultShades) {
		return fmt.Errorf("--shades must be between 1 and %d, got %d", len(palette.DefaultShades), listShades)
	}

	out := cmd.OutOrStdout()
	return writeList(out, families, listShades, isTerminal(out))
}

// writeList prints each family as a heading followed by one row per shade.
func writeList(w io.Writer, families []string, count int, color bool) error {
	vars := palette.TailwindVariables()
	title := lipgloss.NewStyle().Bold(true)

	for i, family := range families {
		if i > 0 {
			fmt.Fprintln(w)
		}
		heading := palette.DisplayName(family)
		if color {
			heading = title.Render(heading)
		}
		fmt.Fprintln(w, heading)

		shades, _ := palette.Default().Shades(family)
		for _, shade := range shades[:min(count, len(shades))] {
			code := palette.Code(family, shade)
			hex := vars[code]

			var row strings.Builder
			if color {
				row.WriteString(lipgloss.NewStyle().
					Background(lipgloss.Color(hex)).
					Foreground(lipgloss.Color(ui.LabelColor(hex))).
					Width(6).
					Align(lipgloss.Center).
					Render(shade))
				row.WriteString(" ")
			}
			fmt.Fprintf(&row, "%-10s %s", code, hex)
			fmt.Fprintln(w, row.String())
		}
	}
	return nil
}
