//go:build unix

package x11

import (
	"bytes"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// decodeWindowList decodes a WINDOW[] property value (e.g. _NET_CLIENT_LIST).
func decodeWindowList(raw []byte) []xproto.Window {
	ids := make([]xproto.Window, 0, len(raw)/4)
	for i := 0; i+4 <= len(raw); i += 4 {
		ids = append(ids, xproto.Window(xgb.Get32(raw[i:])))
	}
	return ids
}

// decodeText turns a text property into a string, dropping trailing NULs.
func decodeText(raw []byte) string {
	return string(bytes.TrimRight(raw, "\x00"))
}

// decodeClass extracts the class part of a WM_CLASS value, which holds two
// NUL-terminated strings: instance name, then class name.
func decodeClass(raw []byte) string {
	parts := bytes.Split(bytes.TrimRight(raw, "\x00"), []byte{0})
	if len(parts) == 0 {
		return ""
	}
	return string(parts[len(parts)-1])
}

// decodeCardinal decodes a single 32-bit CARDINAL value.
func decodeCardinal(raw []byte) (uint32, bool) {
	if len(raw) < 4 {
		return 0, false
	}
	return xgb.Get32(raw), true
}
