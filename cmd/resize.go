package cmd

import (
	"fmt"

	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/spf13/cobra"
)

var resizeCmd = &cobra.Command{
	Use:   "resize <title-regex>",
	Short: "Resize matching windows",
	Long:  "Resize every window whose title matches the regex. Position is left unchanged.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)
	resizeCmd.Flags().Int("width", 0, "Target width in pixels")
	resizeCmd.Flags().Int("height", 0, "Target height in pixels")
	resizeCmd.MarkFlagRequired("width")
	resizeCmd.MarkFlagRequired("height")
}

func runResize(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
	}

	return applyToMatches("resize", args[0], func(m platform.Manager, w *model.Window) error {
		if err := m.Resize(w.ID, width, height); err != nil {
			return err
		}
		w.Bounds[2], w.Bounds[3] = width, height
		return nil
	})
}
