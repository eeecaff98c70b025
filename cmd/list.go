package cmd

import (
	"time"

	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/output"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [title-regex]",
	Short: "List top-level windows",
	Long:  "List top-level windows with their ID, title, class, PID, geometry, and map state. An optional regex narrows the list by title.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("class", "", "Filter by WM_CLASS substring (case-insensitive)")
	listCmd.Flags().Bool("mapped", false, "Only show viewable windows")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	class, _ := cmd.Flags().GetString("class")
	mapped, _ := cmd.Flags().GetBool("mapped")

	windows, err := provider.Lister.ListWindows(platform.ListOptions{
		Class:      class,
		MappedOnly: mapped,
	})
	if err != nil {
		return err
	}

	if len(args) == 1 {
		re, err := compilePattern(args[0])
		if err != nil {
			return err
		}
		windows = model.FilterWindows(windows, model.Filter{Title: re})
	}
	if windows == nil {
		windows = []model.Window{}
	}

	return output.Print(output.ListResult{
		Display: displayName,
		TS:      time.Now().Unix(),
		Windows: windows,
	})
}
