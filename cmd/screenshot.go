package cmd

import (
	"fmt"
	"os"

	"github.com/kweiss/xwinctl/internal/output"
	"github.com/kweiss/xwinctl/internal/platform"
	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot <title-regex>",
	Short: "Capture the first matching window",
	Long:  "Capture the pixels of the first window whose title matches the regex. The window must be viewable. Writes to --output, or raw image bytes to stdout when no file is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().String("format", "png", "Image format: png, jpg")
	screenshotCmd.Flags().Int("quality", 80, "JPEG quality 1-100 (ignored for PNG)")
	screenshotCmd.Flags().Float64("scale", 1.0, "Scale factor 0.1-1.0")
	screenshotCmd.Flags().String("crop", "", "Crop to a window-relative region: x,y,w,h")
	screenshotCmd.Flags().StringP("output", "o", "", "Write the image to this file instead of stdout")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	re, err := compilePattern(args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")
	scale, _ := cmd.Flags().GetFloat64("scale")
	cropStr, _ := cmd.Flags().GetString("crop")
	outFile, _ := cmd.Flags().GetString("output")

	if scale <= 0 || scale > 1.0 {
		return fmt.Errorf("scale must be in (0, 1.0], got %g", scale)
	}

	var crop *platform.Bounds
	if cropStr != "" {
		crop, err = platform.ParseBBox(cropStr)
		if err != nil {
			return err
		}
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	if provider.Screenshotter == nil {
		return fmt.Errorf("screenshots not available on this platform")
	}

	matches, err := matchWindows(provider.Lister, re)
	if err != nil {
		return err
	}
	target := matches[0]
	if !target.Mapped {
		return fmt.Errorf("window %#x (%q) is not viewable; show it first", target.ID, target.Title)
	}

	data, err := provider.Screenshotter.CaptureWindow(platform.ScreenshotOptions{
		WindowID: target.ID,
		Format:   format,
		Quality:  quality,
		Scale:    scale,
		Crop:     crop,
	})
	if err != nil {
		return err
	}

	if outFile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return output.Print(output.ScreenshotResult{
		OK:     true,
		Action: "screenshot",
		Window: target.Title,
		File:   outFile,
		Bytes:  len(data),
	})
}
