package cmd

import (
	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/spf13/cobra"
)

var raiseCmd = &cobra.Command{
	Use:   "raise <title-regex>",
	Short: "Raise matching windows to the top of the stack",
	Long:  "Restack every window whose title matches the regex above its siblings without changing visibility or focus.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRaise,
}

func init() {
	rootCmd.AddCommand(raiseCmd)
}

func runRaise(cmd *cobra.Command, args []string) error {
	return applyToMatches("raise", args[0], func(m platform.Manager, w *model.Window) error {
		return m.Raise(w.ID)
	})
}
