//go:build unix

package x11

import (
	"fmt"

	"github.com/jezek/xgb/xproto"

	"github.com/kweiss/xwinctl/internal/logger"
	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/platform"
)

// ListWindows enumerates top-level windows. EWMH window managers publish
// _NET_CLIENT_LIST on the root; without one we walk the root's children
// directly, which also picks up unmanaged windows.
func (c *Conn) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	ids, fromClientList := c.clientList()
	if !fromClientList {
		tree, err := xproto.QueryTree(c.x, c.root).Reply()
		if err != nil {
			return nil, fmt.Errorf("query window tree: %w", err)
		}
		ids = tree.Children
	}

	active := c.activeWindow()

	windows := make([]model.Window, 0, len(ids))
	for _, id := range ids {
		w, ok := c.describeWindow(id)
		if !ok {
			continue
		}
		w.Focused = active != 0 && id == active
		if !(model.Filter{Class: opts.Class, MappedOnly: opts.MappedOnly}).Matches(w) {
			continue
		}
		windows = append(windows, w)
	}

	logger.Log.Debug().Int("candidates", len(ids)).Int("windows", len(windows)).
		Bool("ewmh", fromClientList).Msg("listed windows")
	return windows, nil
}

// clientList reads _NET_CLIENT_LIST from the root window.
func (c *Conn) clientList() ([]xproto.Window, bool) {
	raw, ok := c.property(c.root, c.atom(netClientList), xproto.AtomWindow)
	if !ok || len(raw) == 0 {
		return nil, false
	}
	return decodeWindowList(raw), true
}

// activeWindow returns the EWMH active window, or 0 when unknown.
func (c *Conn) activeWindow() xproto.Window {
	raw, ok := c.property(c.root, c.atom(netActiveWindow), xproto.AtomWindow)
	if !ok {
		return 0
	}
	v, ok := decodeCardinal(raw)
	if !ok {
		return 0
	}
	return xproto.Window(v)
}

// describeWindow gathers title, class, pid, map state, and root-relative
// geometry for one window. Windows without a readable title are skipped,
// which weeds out the invisible helper windows every client creates.
func (c *Conn) describeWindow(id xproto.Window) (model.Window, bool) {
	title := c.windowTitle(id)
	if title == "" {
		return model.Window{}, false
	}

	attr, err := xproto.GetWindowAttributes(c.x, id).Reply()
	if err != nil {
		return model.Window{}, false
	}

	w := model.Window{
		ID:     uint32(id),
		Title:  title,
		Class:  c.windowClass(id),
		PID:    c.windowPID(id),
		Mapped: attr.MapState == xproto.MapStateViewable,
	}

	if geom, err := xproto.GetGeometry(c.x, xproto.Drawable(id)).Reply(); err == nil {
		x, y := int(geom.X), int(geom.Y)
		// Reparenting window managers wrap clients in frame windows, so the
		// geometry origin is frame-relative. Translate to root coordinates.
		if tr, err := xproto.TranslateCoordinates(c.x, id, c.root, 0, 0).Reply(); err == nil {
			x, y = int(tr.DstX), int(tr.DstY)
		}
		w.Bounds = [4]int{x, y, int(geom.Width), int(geom.Height)}
	}

	return w, true
}

// windowTitle prefers the UTF-8 _NET_WM_NAME and falls back to the legacy
// WM_NAME property.
func (c *Conn) windowTitle(id xproto.Window) string {
	if raw, ok := c.property(id, c.atom(netWmName), c.atom(utf8String)); ok && len(raw) > 0 {
		return decodeText(raw)
	}
	if raw, ok := c.property(id, xproto.AtomWmName, xproto.GetPropertyTypeAny); ok {
		return decodeText(raw)
	}
	return ""
}

func (c *Conn) windowClass(id xproto.Window) string {
	raw, ok := c.property(id, xproto.AtomWmClass, xproto.AtomString)
	if !ok {
		return ""
	}
	return decodeClass(raw)
}

func (c *Conn) windowPID(id xproto.Window) int {
	raw, ok := c.property(id, c.atom(netWmPid), xproto.AtomCardinal)
	if !ok {
		return 0
	}
	pid, ok := decodeCardinal(raw)
	if !ok {
		return 0
	}
	return int(pid)
}
