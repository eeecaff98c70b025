package cmd

import (
	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/output"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus <title-regex>",
	Short: "Focus the first matching window",
	Long:  "Activate the first window whose title matches the regex, raising it and giving it input focus. Only one window can hold focus, so additional matches are ignored.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	re, err := compilePattern(args[0])
	if err != nil {
		return err
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	matches, err := matchWindows(provider.Lister, re)
	if err != nil {
		return err
	}

	target := matches[0]
	if err := provider.Manager.Activate(target.ID); err != nil {
		return err
	}
	target.Focused = true

	return output.Print(output.ActionResult{
		OK:      true,
		Action:  "focus",
		Pattern: args[0],
		Windows: []model.Window{target},
	})
}
