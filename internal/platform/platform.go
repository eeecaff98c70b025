package platform

import "github.com/kweiss/xwinctl/internal/model"

// Lister enumerates top-level windows known to the window system.
type Lister interface {
	// ListWindows returns all top-level windows, optionally filtered.
	// Windows without a readable title are skipped.
	ListWindows(opts ListOptions) ([]model.Window, error)
}

// Manager changes window geometry, visibility, and stacking order.
type Manager interface {
	// MoveResize sets position and size in a single request.
	MoveResize(id uint32, b Bounds) error
	// Move repositions a window, leaving its size untouched.
	Move(id uint32, x, y int) error
	// Resize changes a window's size, leaving its position untouched.
	Resize(id uint32, width, height int) error
	// Show maps a hidden window.
	Show(id uint32) error
	// Hide unmaps a window without destroying it.
	Hide(id uint32) error
	// Raise restacks a window above its siblings.
	Raise(id uint32) error
	// Activate raises the window and gives it input focus.
	Activate(id uint32) error
}

// Screenshotter captures window contents.
type Screenshotter interface {
	// CaptureWindow captures a window's pixels and returns encoded image bytes.
	CaptureWindow(opts ScreenshotOptions) ([]byte, error)
}
