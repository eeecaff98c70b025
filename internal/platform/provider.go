package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all window-system backends for the current platform.
type Provider struct {
	Lister        Lister
	Manager       Manager
	Screenshotter Screenshotter

	// Closer releases the underlying display connection.
	Closer func()
}

// Close releases the provider's display connection, if any.
func (p *Provider) Close() {
	if p.Closer != nil {
		p.Closer()
	}
}

// ErrUnsupported is returned on platforms without an X11 backend.
var ErrUnsupported = fmt.Errorf("xwinctl requires an X11 display and is not supported on %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/x11 for the X11 registration.
var NewProviderFunc func(display string) (*Provider, error)

// NewProvider connects to the window system. An empty display falls back to
// the DISPLAY environment variable.
func NewProvider(display string) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(display)
}
