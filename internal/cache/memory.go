package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process cache with per-entry expiry. Embedding
// vectors are small and comparisons are short-lived, so memory is the
// only tier.
type MemoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{c: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a value from the cache
func (m *MemoryCache) Get(key string) ([]byte, bool) {
	if v, found := m.c.Get(key); found {
		return v.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL (zero means the default)
func (m *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache
func (m *MemoryCache) Delete(key string) error {
	m.c.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (m *MemoryCache) Clear() error {
	m.c.Flush()
	return nil
}
