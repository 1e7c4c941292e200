package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/swatch/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved preferences and the debug log",
	Long: `Deletes the preferences file and the debug log so the next start uses the
built-in defaults. It will prompt for confirmation before proceeding unless
the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	path, err := preferencesPath()
	if err != nil {
		return err
	}
	return runCleanWithReader(cmd.InOrStdin(), cmd.OutOrStdout(), path)
}

// runCleanWithReader allows injecting input, output and the preferences path for testing
func runCleanWithReader(input io.Reader, out io.Writer, prefsPath string) error {
	_, prefsErr := os.Stat(prefsPath)
	hasPrefs := prefsErr == nil
	_, logErr := os.Stat(logger.DefaultLogPath)
	hasLog := logErr == nil

	if !hasPrefs && !hasLog {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	if hasPrefs {
		fmt.Fprintf(out, "  - preferences: %s\n", prefsPath)
	}
	if hasLog {
		fmt.Fprintf(out, "  - debug log: %s\n", logger.DefaultLogPath)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if hasPrefs {
		if err := os.Remove(prefsPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing preferences: %w", err)
		}
	}

	logsCleared := false
	if hasLog {
		// Close our own handle first so the file can go
		logger.Close()
		cleared, err := logger.ClearLogs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
		}
		logsCleared = cleared
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if hasPrefs {
		fmt.Fprintln(out, "  - preferences removed")
	}
	if logsCleared {
		fmt.Fprintln(out, "  - debug log removed")
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
