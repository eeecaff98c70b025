package cmd

import (
	"fmt"
	"regexp"

	"github.com/kweiss/xwinctl/internal/logger"
	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/output"
	"github.com/kweiss/xwinctl/internal/platform"
)

// newProvider connects to the X server using the resolved display name.
func newProvider() (*platform.Provider, error) {
	return platform.NewProvider(displayName)
}

// compilePattern compiles the title regex argument.
func compilePattern(arg string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid title pattern %q: %w", arg, err)
	}
	return re, nil
}

// matchWindows lists all windows and keeps those whose titles match re.
// Zero matches is an error; with --first only the first match survives.
func matchWindows(lister platform.Lister, re *regexp.Regexp) ([]model.Window, error) {
	windows, err := lister.ListWindows(platform.ListOptions{})
	if err != nil {
		return nil, err
	}
	matches := model.FilterWindows(windows, model.Filter{Title: re})
	if len(matches) == 0 {
		return nil, fmt.Errorf("no window title matches %q", re.String())
	}
	logger.Log.Debug().Str("pattern", re.String()).Int("matches", len(matches)).Msg("matched windows")
	if firstOnly && len(matches) > 1 {
		matches = matches[:1]
	}
	return matches, nil
}

// applyToMatches connects, resolves the pattern, runs fn on every match,
// and prints an ActionResult. fn may update the window for the report.
func applyToMatches(action, pattern string, fn func(m platform.Manager, w *model.Window) error) error {
	re, err := compilePattern(pattern)
	if err != nil {
		return err
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	if provider.Manager == nil {
		return fmt.Errorf("window management not available on this platform")
	}

	matches, err := matchWindows(provider.Lister, re)
	if err != nil {
		return err
	}

	for i := range matches {
		w := &matches[i]
		if err := fn(provider.Manager, w); err != nil {
			return fmt.Errorf("%s window %#x (%q): %w", action, w.ID, w.Title, err)
		}
		logger.Log.Debug().Uint32("window", w.ID).Str("title", w.Title).Str("action", action).Msg("applied")
	}

	return output.Print(output.ActionResult{
		OK:      true,
		Action:  action,
		Pattern: pattern,
		Windows: matches,
	})
}
