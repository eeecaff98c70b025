package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds represents a screen rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// ParseBBox parses a "x,y,w,h" string into a Bounds.
func ParseBBox(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	return &Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// ListOptions controls window listing.
type ListOptions struct {
	Class      string // Filter by WM_CLASS substring (case-insensitive)
	MappedOnly bool   // Only include viewable windows
}

// ScreenshotOptions configures what to capture.
type ScreenshotOptions struct {
	WindowID uint32  // Window to capture
	Format   string  // "png" or "jpg"
	Quality  int     // JPEG quality 1-100 (ignored for PNG)
	Scale    float64 // Scale factor 0.1-1.0 (default 1.0)
	Crop     *Bounds // Crop to this window-relative region (nil = whole window)
}
