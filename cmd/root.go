package cmd

import (
	"fmt"
	"os"

	"github.com/kweiss/xwinctl/internal/config"
	"github.com/kweiss/xwinctl/internal/logger"
	"github.com/kweiss/xwinctl/internal/output"
	"github.com/kweiss/xwinctl/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xwinctl",
	Short: "Move, resize, hide, show, and raise X11 windows by title",
	Long: `xwinctl matches top-level X11 window titles against a regular expression
and applies geometry or visibility changes to every matching window.`,
}

// displayName is the resolved X display, used by every command when
// connecting. Set in PersistentPreRunE from --display, config, or $DISPLAY.
var displayName string

// firstOnly restricts actions to the first matching window.
var firstOnly bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("display", "", "X display to connect to (default: $DISPLAY)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("first", false, "Act on only the first matching window")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadDefault()
		if err != nil {
			return err
		}

		flags := rootCmd.PersistentFlags()

		verbose, _ := flags.GetBool("verbose")
		if !flags.Changed("verbose") {
			verbose = cfg.Verbose
		}
		logger.Setup(verbose)

		displayName, _ = flags.GetString("display")
		if displayName == "" {
			displayName = cfg.Display
		}

		// Flag beats config beats the yaml default.
		format, _ := flags.GetString("format")
		if format == "" {
			format = cfg.Format
		}
		if format == "" {
			format = "yaml"
		}
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		pretty, _ := flags.GetBool("pretty")
		output.PrettyOutput = pretty

		firstOnly, _ = flags.GetBool("first")
		return nil
	}
}
