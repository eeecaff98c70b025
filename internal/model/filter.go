package model

import (
	"regexp"
	"strings"
)

// Filter narrows a window list. Zero-value fields are no-ops, so an empty
// Filter matches everything.
type Filter struct {
	Title      *regexp.Regexp // match against the window title (nil = any)
	Class      string         // case-insensitive substring match on WM_CLASS
	MappedOnly bool           // keep only viewable windows
}

// Matches reports whether a single window passes the filter.
func (f Filter) Matches(w Window) bool {
	if f.Title != nil && !f.Title.MatchString(w.Title) {
		return false
	}
	if f.Class != "" && !strings.Contains(strings.ToLower(w.Class), strings.ToLower(f.Class)) {
		return false
	}
	if f.MappedOnly && !w.Mapped {
		return false
	}
	return true
}

// FilterWindows returns the windows passing the filter, preserving order.
func FilterWindows(windows []Window, f Filter) []Window {
	var out []Window
	for _, w := range windows {
		if f.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}
