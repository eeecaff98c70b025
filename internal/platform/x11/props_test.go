//go:build unix

package x11

import (
	"testing"

	"github.com/jezek/xgb/xproto"
)

func TestDecodeWindowList(t *testing.T) {
	// Two 32-bit little-endian window IDs: 0x2e00005, 0x1c00002
	raw := []byte{0x05, 0x00, 0xe0, 0x02, 0x02, 0x00, 0xc0, 0x01}
	ids := decodeWindowList(raw)
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	if ids[0] != xproto.Window(0x2e00005) {
		t.Errorf("ids[0]: got %#x", ids[0])
	}
	if ids[1] != xproto.Window(0x1c00002) {
		t.Errorf("ids[1]: got %#x", ids[1])
	}
}

func TestDecodeWindowList_TruncatedTail(t *testing.T) {
	raw := []byte{0x01, 0x00, 0x00, 0x00, 0xff, 0xff}
	ids := decodeWindowList(raw)
	if len(ids) != 1 {
		t.Fatalf("trailing partial entry should be dropped, got %d ids", len(ids))
	}
}

func TestDecodeWindowList_Empty(t *testing.T) {
	if ids := decodeWindowList(nil); len(ids) != 0 {
		t.Errorf("expected no ids, got %d", len(ids))
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		raw  []byte
		want string
	}{
		{[]byte("Mozilla Firefox"), "Mozilla Firefox"},
		{[]byte("xterm\x00"), "xterm"},
		{[]byte{}, ""},
		{[]byte("émacs — scratch"), "émacs — scratch"},
	}
	for _, tt := range tests {
		if got := decodeText(tt.raw); got != tt.want {
			t.Errorf("decodeText(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDecodeClass(t *testing.T) {
	tests := []struct {
		raw  []byte
		want string
	}{
		{[]byte("navigator\x00Firefox\x00"), "Firefox"},
		{[]byte("xterm\x00XTerm\x00"), "XTerm"},
		{[]byte("onlyinstance\x00"), "onlyinstance"},
		{[]byte{}, ""},
	}
	for _, tt := range tests {
		if got := decodeClass(tt.raw); got != tt.want {
			t.Errorf("decodeClass(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDecodeCardinal(t *testing.T) {
	v, ok := decodeCardinal([]byte{0x39, 0x30, 0x00, 0x00})
	if !ok {
		t.Fatal("expected ok")
	}
	if v != 12345 {
		t.Errorf("got %d, want 12345", v)
	}

	if _, ok := decodeCardinal([]byte{0x01, 0x02}); ok {
		t.Error("short value should not decode")
	}
}
