package catalog

import (
	"sync"
	"time"
)

// rowCache bounds how stale a discovery row may be served. Rows change on
// the order of days upstream; a ten-minute TTL keeps browse traffic off
// TMDB without anyone noticing. Details and search bypass it entirely.
type rowCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]rowEntry
	now     func() time.Time
}

type rowEntry struct {
	items   []Item
	fetched time.Time
}

func newRowCache(ttl time.Duration) *rowCache {
	return &rowCache{
		ttl:     ttl,
		entries: make(map[string]rowEntry),
		now:     time.Now,
	}
}

func (c *rowCache) get(key string) ([]Item, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetched) >= c.ttl {
		return nil, false
	}
	return e.items, true
}

func (c *rowCache) put(key string, items []Item) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = rowEntry{items: items, fetched: c.now()}
	c.mu.Unlock()
}
