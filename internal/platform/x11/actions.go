//go:build unix

package x11

import (
	"fmt"

	"github.com/jezek/xgb/xproto"

	"github.com/kweiss/xwinctl/internal/logger"
	"github.com/kweiss/xwinctl/internal/platform"
)

// EWMH source indication for client messages sent on behalf of the user.
const sourceUser = 2

// MoveResize sets position and size in one ConfigureWindow request.
func (c *Conn) MoveResize(id uint32, b platform.Bounds) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{
		uint32(int32(b.X)), uint32(int32(b.Y)),
		uint32(b.Width), uint32(b.Height),
	}
	return c.configure(id, mask, values, "move-resize")
}

// Move repositions a window without touching its size.
func (c *Conn) Move(id uint32, x, y int) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	return c.configure(id, mask, []uint32{uint32(int32(x)), uint32(int32(y))}, "move")
}

// Resize changes a window's size without touching its position.
func (c *Conn) Resize(id uint32, width, height int) error {
	mask := uint16(xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	return c.configure(id, mask, []uint32{uint32(width), uint32(height)}, "resize")
}

// Raise restacks the window above all siblings.
func (c *Conn) Raise(id uint32) error {
	mask := uint16(xproto.ConfigWindowStackMode)
	return c.configure(id, mask, []uint32{xproto.StackModeAbove}, "raise")
}

// Show maps the window.
func (c *Conn) Show(id uint32) error {
	if err := xproto.MapWindowChecked(c.x, xproto.Window(id)).Check(); err != nil {
		return fmt.Errorf("map window %#x: %w", id, err)
	}
	logger.Log.Debug().Uint32("window", id).Msg("mapped window")
	return nil
}

// Hide unmaps the window. The window keeps its geometry and can be shown again.
func (c *Conn) Hide(id uint32) error {
	if err := xproto.UnmapWindowChecked(c.x, xproto.Window(id)).Check(); err != nil {
		return fmt.Errorf("unmap window %#x: %w", id, err)
	}
	logger.Log.Debug().Uint32("window", id).Msg("unmapped window")
	return nil
}

// Activate asks the window manager to focus the window via a
// _NET_ACTIVE_WINDOW client message. Without an EWMH window manager the
// message goes nowhere, so fall back to map+raise+focus directly.
func (c *Conn) Activate(id uint32) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(id),
		Type:   c.atom(netActiveWindow),
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			sourceUser, uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	err := xproto.SendEventChecked(c.x, false, c.root, mask, string(ev.Bytes())).Check()
	if err == nil {
		logger.Log.Debug().Uint32("window", id).Msg("sent _NET_ACTIVE_WINDOW")
		return nil
	}

	logger.Log.Debug().Uint32("window", id).Err(err).Msg("EWMH activate failed, focusing directly")
	if err := c.Show(id); err != nil {
		return err
	}
	if err := c.Raise(id); err != nil {
		return err
	}
	if err := xproto.SetInputFocusChecked(c.x, xproto.InputFocusPointerRoot,
		xproto.Window(id), xproto.TimeCurrentTime).Check(); err != nil {
		return fmt.Errorf("set input focus on %#x: %w", id, err)
	}
	return nil
}

func (c *Conn) configure(id uint32, mask uint16, values []uint32, action string) error {
	if err := xproto.ConfigureWindowChecked(c.x, xproto.Window(id), mask, values).Check(); err != nil {
		return fmt.Errorf("%s window %#x: %w", action, id, err)
	}
	logger.Log.Debug().Uint32("window", id).Str("action", action).Msg("configured window")
	return nil
}
