// Package cache memoizes upstream responses for a short TTL so near-
// simultaneous dashboard lookups don't hammer the API. A stale read within
// the TTL window is acceptable; entries are not rebuilt atomically.
package cache

import (
	"net/url"
	"sync"
	"time"
)

const defaultTTL = 30 * time.Second

type entry struct {
	payload   map[string]any
	expiresAt time.Time
}

// Cache is a TTL memoization keyed by (path, encoded params).
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New constructs a Cache. A non-positive TTL falls back to the default.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key builds the cache key for a request. url.Values.Encode sorts keys, so
// equivalent parameter maps produce the same key.
func Key(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

// Get returns the memoized payload for key when it is still fresh.
func (c *Cache) Get(key string) (map[string]any, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.payload, true
}

// Set memoizes a payload under key for the configured TTL.
func (c *Cache) Set(key string, payload map[string]any) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{payload: payload, expiresAt: c.now().Add(c.ttl)}
}
