package cmd

import (
	"sync"
	"time"

	"github.com/kweiss/xwinctl/internal/model"
	"github.com/kweiss/xwinctl/internal/platform"
)

// windowCache is a TTL cache for the window list. MCP agents often issue a
// read-act-read burst; caching spares the X server a full property sweep on
// each call. Write actions invalidate it.
type windowCache struct {
	mu      sync.Mutex
	windows []model.Window
	at      time.Time
	ttl     time.Duration
}

// newWindowCache creates a new cache. A ttl of 0 disables caching.
func newWindowCache(ttl time.Duration) *windowCache {
	return &windowCache{ttl: ttl}
}

// list returns the cached window list when fresh, otherwise fetches anew.
func (c *windowCache) list(lister platform.Lister) ([]model.Window, error) {
	if c.ttl == 0 {
		return lister.ListWindows(platform.ListOptions{})
	}

	c.mu.Lock()
	if c.windows != nil && time.Since(c.at) < c.ttl {
		windows := c.windows
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := lister.ListWindows(platform.ListOptions{})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.windows = windows
	c.at = time.Now()
	c.mu.Unlock()

	return windows, nil
}

// invalidate drops the cached list.
func (c *windowCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.windows = nil
}
