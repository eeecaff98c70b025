package cmd

import (
	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <title-regex>",
	Short: "Show matching hidden windows",
	Long:  "Map every window whose title matches the regex, making previously hidden windows visible again.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	return applyToMatches("show", args[0], func(m platform.Manager, w *model.Window) error {
		if err := m.Show(w.ID); err != nil {
			return err
		}
		w.Mapped = true
		return nil
	})
}
