package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cache is a concurrency-safe in-memory store with per-entry TTL. Expired
// entries are dropped lazily on Get. Concurrent sets for the same key are
// last-writer-wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   clockwork.Clock
}

type entry struct {
	value  any
	expiry time.Time
}

// Stats summarizes cache occupancy.
type Stats struct {
	TotalEntries   int `json:"total_entries"`
	ExpiredEntries int `json:"expired_entries"`
	ActiveEntries  int `json:"active_entries"`
}

// New creates a cache. A nil clock falls back to real time; tests inject a
// fake clock for deterministic expiry.
func New(clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Get returns the cached value, or false when missing or expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.clock.Now().After(e.expiry) {
		c.mu.Lock()
		// re-check under the write lock; a concurrent Set may have renewed it
		if cur, ok := c.entries[key]; ok && c.clock.Now().After(cur.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores value under key for ttl.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:  value,
		expiry: c.clock.Now().Add(ttl),
	}
}

// Invalidate removes a single key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// GetStats counts total, expired, and active entries.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.clock.Now()
	expired := 0
	for _, e := range c.entries {
		if now.After(e.expiry) {
			expired++
		}
	}

	total := len(c.entries)
	return Stats{
		TotalEntries:   total,
		ExpiredEntries: expired,
		ActiveEntries:  total - expired,
	}
}
