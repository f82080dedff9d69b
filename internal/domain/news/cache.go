package news

import (
	"sync"
	"time"
)

type cacheEntry struct {
	items     []Item
	fetchedAt time.Time
}

// feedCache is a TTL cache keyed by feed URL. Expired entries are kept so
// callers can fall back to stale data when a refresh fails.
type feedCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newFeedCache(ttl time.Duration) *feedCache {
	return &feedCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached items and whether the entry is still fresh. The
// second return is false both for missing and for expired entries.
func (c *feedCache) get(url string) ([]Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[url]
	if !ok {
		return nil, false
	}
	return entry.items, time.Since(entry.fetchedAt) < c.ttl
}

func (c *feedCache) set(url string, items []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = cacheEntry{items: items, fetchedAt: time.Now()}
}
