package cmd

import (
	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/spf13/cobra"
)

var hideCmd = &cobra.Command{
	Use:   "hide <title-regex>",
	Short: "Hide matching windows",
	Long:  "Unmap every window whose title matches the regex. Hidden windows keep their geometry and can be restored with show.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHide,
}

func init() {
	rootCmd.AddCommand(hideCmd)
}

func runHide(cmd *cobra.Command, args []string) error {
	return applyToMatches("hide", args[0], func(m platform.Manager, w *model.Window) error {
		if err := m.Hide(w.ID); err != nil {
			return err
		}
		w.Mapped = false
		return nil
	})
}
