package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/swatch/internal/clipboard"
	"github.com/zhubert/swatch/internal/logger"
	"github.com/zhubert/swatch/internal/notification"
	"github.com/zhubert/swatch/internal/palette"
)

var copyNotify bool

// copyWriter is the clipboard used by the copy command; tests replace it.
var copyWriter clipboard.Writer = clipboard.System

// copyNotifier sends the desktop notification; tests replace it.
var copyNotifier = notification.Copied

var copyCmd = &cobra.Command{
	Use:   "copy <color> <shade>",
	Short: "Copy a color code such as blue-500 to the clipboard",
	Args:  cobra.ExactArgs(2),
	RunE:  runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&copyNotify, "notify", false, "Also show a desktop notification")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	family, err := resolveFamily(args[0])
	if err != nil {
		return err
	}
	shade, err := resolveShade(family, args[1])
	if err != nil {
		return err
	}

	code := palette.Code(family, shade)
	if err := copyWriter.WriteText(code); err != nil {
		return err
	}
	logger.WithComponent("cmd").Info("copied color code", "code", code)

	fmt.Fprintln(cmd.OutOrStdout(), notification.CopiedMessage(code))

	if copyNotify {
		if err := copyNotifier(code); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
	}
	return nil
}
