package item

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/argguild/epgpbot/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

type cachedItemEntry struct {
	Version  string
	Item     domain.Item
	CachedAt time.Time
}

// itemCache is an in-memory LRU over catalog lookups with time-based expiration
type itemCache struct {
	lru *expirable.LRU[int64, *cachedItemEntry]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[int64, *cachedItemEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached item. Entries of an older schema version are dropped.
func (c *itemCache) Get(id int64) (*domain.Item, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	item := entry.Item
	return &item, true
}

func (c *itemCache) Set(item domain.Item) {
	c.lru.Add(item.ID, &cachedItemEntry{
		Version:  CacheSchemaVersion,
		Item:     item,
		CachedAt: time.Now(),
	})
}

func (c *itemCache) Invalidate(id int64) {
	c.lru.Remove(id)
}

func (c *itemCache) Len() int {
	return c.lru.Len()
}
