package cmd

import (
	"fmt"
	"time"

	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/output"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/spf13/cobra"
)

var waitCmd = &cobra.Command{
	Use:   "wait <title-regex>",
	Short: "Wait for a matching window to appear or disappear",
	Long:  "Poll the window list until a window whose title matches the regex exists (or, with --gone, no longer exists) or the timeout is reached.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().Bool("gone", false, "Invert: wait until NO window matches")
	waitCmd.Flags().Bool("mapped", false, "Only consider viewable windows")
	waitCmd.Flags().Int("timeout", 30, "Max seconds to wait")
	waitCmd.Flags().Int("interval", 500, "Polling interval in milliseconds")
}

func runWait(cmd *cobra.Command, args []string) error {
	re, err := compilePattern(args[0])
	if err != nil {
		return err
	}

	gone, _ := cmd.Flags().GetBool("gone")
	mapped, _ := cmd.Flags().GetBool("mapped")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	timeout := time.Duration(timeoutSec) * time.Second
	interval := time.Duration(intervalMs) * time.Millisecond
	start := time.Now()
	deadline := start.Add(timeout)

	for {
		windows, err := provider.Lister.ListWindows(platform.ListOptions{MappedOnly: mapped})
		if err != nil {
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout after %s (last error: %w)", timeout, err)
			}
			time.Sleep(interval)
			continue
		}

		matched := len(model.FilterWindows(windows, model.Filter{Title: re})) > 0
		if matched != gone {
			return output.Print(output.WaitResult{
				OK:      true,
				Action:  "wait",
				Pattern: args[0],
				Elapsed: fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
			})
		}

		if time.Now().After(deadline) {
			// Print the result, then return an error for a non-zero exit code
			_ = output.Print(output.WaitResult{
				OK:       false,
				Action:   "wait",
				Pattern:  args[0],
				Elapsed:  fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
				TimedOut: true,
			})
			cond := "appear"
			if gone {
				cond = "disappear"
			}
			return fmt.Errorf("timed out waiting for window matching %q to %s", args[0], cond)
		}

		time.Sleep(interval)
	}
}
