package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/swatch/internal/app"
	"github.com/zhubert/swatch/internal/config"
	"github.com/zhubert/swatch/internal/logger"
	"github.com/zhubert/swatch/internal/viewer"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// Startup overrides for the TUI
var (
	darkMode    bool
	stackedMode bool
	shadeCount  int
	startColor  string
	startShade  string
	notifyMode  bool
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Browse Tailwind CSS color palettes in the terminal",
	Long: `Swatch is a terminal viewer for the Tailwind CSS rose, pink, blue and green
palettes. Pick a color and a shade, switch between grid and stacked layouts
or light and dark themes, copy "<color>-<shade>" codes to the clipboard, and
add custom colors for the session.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Preferences file (default ~/.swatch/config.json)")

	rootCmd.Flags().BoolVar(&darkMode, "dark", false, "Start in the dark theme")
	rootCmd.Flags().BoolVar(&stackedMode, "stacked", false, "Start in the stacked layout")
	rootCmd.Flags().IntVarP(&shadeCount, "shades", "n", viewer.MaxShadeCount, "Number of shades to show (1-11)")
	rootCmd.Flags().StringVar(&startColor, "color", "", "Initially selected color")
	rootCmd.Flags().StringVar(&startShade, "shade", "", "Initially selected shade")
	rootCmd.Flags().BoolVar(&notifyMode, "notify", false, "Mirror notifications on the desktop")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("swatch %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("swatch %s\n", version)
}

// loadConfig reads the preferences file named by --config, or the default one.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// preferencesPath is the file loadConfig reads.
func preferencesPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// startupOptions applies the flags the user set on top of the config.
func startupOptions(cmd *cobra.Command, cfg *config.Config) (viewer.Options, error) {
	opts := cfg.ViewerOptions()
	flags := cmd.Flags()

	if flags.Changed("dark") {
		opts.Mode = viewer.ModeLight
		if darkMode {
			opts.Mode = viewer.ModeDark
		}
	}
	if flags.Changed("stacked") {
		opts.Layout = viewer.LayoutGrid
		if stackedMode {
			opts.Layout = viewer.LayoutStacked
		}
	}
	if flags.Changed("shades") {
		if shadeCount < viewer.MinShadeCount || shadeCount > viewer.MaxShadeCount {
			return opts, fmt.Errorf("--shades must be between %d and %d, got %d",
				viewer.MinShadeCount, viewer.MaxShadeCount, shadeCount)
		}
		opts.ShadeCount = shadeCount
	}
	if flags.Changed("color") {
		family, err := resolveFamily(startColor)
		if err != nil {
			return opts, err
		}
		opts.Color = family
	}
	if flags.Changed("shade") {
		opts.Shade = startShade
	}
	if flags.Changed("notify") {
		cfg.SetNotificationsEnabled(notifyMode)
	}
	return opts, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	opts, err := startupOptions(cmd, cfg)
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	logger.WithComponent("cmd").Info("starting", "version", version, "config", cfg.Path())

	m := app.New(cfg, version, app.WithViewerOptions(opts))
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
