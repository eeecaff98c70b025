package cmd

import (
	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <title-regex>",
	Short: "Move matching windows to a new position",
	Long:  "Move every window whose title matches the regex to the given coordinates. Size is left unchanged.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().IntP("x", "x", 0, "Target X coordinate")
	moveCmd.Flags().IntP("y", "y", 0, "Target Y coordinate")
	moveCmd.MarkFlagRequired("x")
	moveCmd.MarkFlagRequired("y")
}

func runMove(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	return applyToMatches("move", args[0], func(m platform.Manager, w *model.Window) error {
		if err := m.Move(w.ID, x, y); err != nil {
			return err
		}
		w.Bounds[0], w.Bounds[1] = x, y
		return nil
	})
}
