//go:build unix

package x11

import (
	"fmt"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/kweiss/xwinctl/internal/logger"
)

// EWMH atom names interned at connect time. WM_NAME, WM_CLASS and friends
// are predefined atoms and need no round-trip.
const (
	netClientList   = "_NET_CLIENT_LIST"
	netWmName       = "_NET_WM_NAME"
	netWmPid        = "_NET_WM_PID"
	netActiveWindow = "_NET_ACTIVE_WINDOW"
	utf8String      = "UTF8_STRING"
)

var atomNames = []string{netClientList, netWmName, netWmPid, netActiveWindow, utf8String}

// propMax caps property reads at 1 MiB of 32-bit units, far beyond any
// realistic title or client list.
const propMax = 1 << 18

// Conn is an X server connection with the root window and atom table
// resolved. It implements platform.Lister, Manager, and Screenshotter.
type Conn struct {
	x     *xgb.Conn
	root  xproto.Window
	atoms map[string]xproto.Atom
}

// NewConn connects to the X server. An empty display uses $DISPLAY.
func NewConn(display string) (*Conn, error) {
	x, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("cannot open display %q: %w", displayName(display), err)
	}

	screen := xproto.Setup(x).DefaultScreen(x)
	c := &Conn{
		x:     x,
		root:  screen.Root,
		atoms: make(map[string]xproto.Atom, len(atomNames)),
	}

	for _, name := range atomNames {
		reply, err := xproto.InternAtom(x, false, uint16(len(name)), name).Reply()
		if err != nil {
			x.Close()
			return nil, fmt.Errorf("intern atom %s: %w", name, err)
		}
		c.atoms[name] = reply.Atom
	}

	logger.Log.Debug().Str("display", displayName(display)).
		Uint32("root", uint32(c.root)).Msg("connected to X server")
	return c, nil
}

// Close shuts down the X connection.
func (c *Conn) Close() {
	c.x.Close()
}

func (c *Conn) atom(name string) xproto.Atom {
	return c.atoms[name]
}

// property fetches the full value of a window property. It returns nil
// with ok=false when the property is absent.
func (c *Conn) property(win xproto.Window, prop xproto.Atom, typ xproto.Atom) ([]byte, bool) {
	reply, err := xproto.GetProperty(c.x, false, win, prop, typ, 0, propMax).Reply()
	if err != nil || reply.Format == 0 {
		return nil, false
	}
	return reply.Value, true
}

func displayName(display string) string {
	if display != "" {
		return display
	}
	return os.Getenv("DISPLAY")
}
