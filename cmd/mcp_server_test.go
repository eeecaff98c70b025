package cmd

import (
	"testing"
	"time"
)

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"title": "vim", "count": 3.0}
	if got := stringParam(params, "title", ""); got != "vim" {
		t.Errorf("got %q", got)
	}
	if got := stringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
	// Wrong type falls back to default
	if got := stringParam(params, "count", "d"); got != "d" {
		t.Errorf("got %q", got)
	}
}

func TestIntParam(t *testing.T) {
	// JSON numbers decode as float64
	params := map[string]interface{}{"x": 42.0, "y": -7.0, "s": "nope"}
	if got := intParam(params, "x", 0); got != 42 {
		t.Errorf("got %d", got)
	}
	if got := intParam(params, "y", 0); got != -7 {
		t.Errorf("got %d", got)
	}
	if got := intParam(params, "missing", 9); got != 9 {
		t.Errorf("got %d", got)
	}
	if got := intParam(params, "s", 5); got != 5 {
		t.Errorf("got %d", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{"gone": true}
	if !boolParam(params, "gone", false) {
		t.Error("expected true")
	}
	if boolParam(params, "missing", false) {
		t.Error("expected default false")
	}
}

func TestFloatParam(t *testing.T) {
	params := map[string]interface{}{"scale": 0.5}
	if got := floatParam(params, "scale", 1.0); got != 0.5 {
		t.Errorf("got %g", got)
	}
	if got := floatParam(params, "missing", 1.0); got != 1.0 {
		t.Errorf("got %g", got)
	}
}

func TestWindowCache_ServesWithinTTL(t *testing.T) {
	lister := &fakeLister{windows: testWindows}
	cache := newWindowCache(time.Minute)

	first, err := cache.list(lister)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cache.list(lister)
	if err != nil {
		t.Fatal(err)
	}
	if lister.calls != 1 {
		t.Errorf("expected 1 backend call, got %d", lister.calls)
	}
	if len(first) != len(second) {
		t.Errorf("cached list differs: %d vs %d", len(first), len(second))
	}
}

func TestWindowCache_InvalidateForcesRefetch(t *testing.T) {
	lister := &fakeLister{windows: testWindows}
	cache := newWindowCache(time.Minute)

	if _, err := cache.list(lister); err != nil {
		t.Fatal(err)
	}
	cache.invalidate()
	if _, err := cache.list(lister); err != nil {
		t.Fatal(err)
	}
	if lister.calls != 2 {
		t.Errorf("expected refetch after invalidate, got %d calls", lister.calls)
	}
}

func TestWindowCache_ZeroTTLDisablesCaching(t *testing.T) {
	lister := &fakeLister{windows: testWindows}
	cache := newWindowCache(0)

	for i := 0; i < 3; i++ {
		if _, err := cache.list(lister); err != nil {
			t.Fatal(err)
		}
	}
	if lister.calls != 3 {
		t.Errorf("zero TTL should bypass the cache, got %d calls", lister.calls)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	for _, name := range []string{"transport", "port", "cache-ttl"} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s on serve command", name)
		}
	}
	transport, _ := serveCmd.Flags().GetString("transport")
	if transport != "stdio" {
		t.Errorf("default transport: got %q, want stdio", transport)
	}
}
