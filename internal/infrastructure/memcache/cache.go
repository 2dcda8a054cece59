// Package memcache provides an in-process ports.Cache backed by otter.
package memcache

import (
	"context"
	"time"

	"github.com/maypok86/otter/v2"
)

type entry struct {
	value string
	ttl   time.Duration
}

// MemoryCache is a bounded in-memory cache with per-entry TTL.
type MemoryCache struct {
	cache      *otter.Cache[string, entry]
	defaultTTL time.Duration
}

// NewMemoryCache creates a cache holding at most maxSize entries.
// defaultTTL applies when Set is called with ttl <= 0.
func NewMemoryCache(defaultTTL time.Duration, maxSize int) *MemoryCache {
	c := otter.Must(&otter.Options[string, entry]{
		MaximumSize: maxSize,
		// Expiry restarts on every write, so an overwrite gets a fresh TTL.
		ExpiryCalculator: otter.ExpiryWritingFunc(func(e otter.Entry[string, entry]) time.Duration {
			return e.Value.ttl
		}),
	})
	return &MemoryCache{cache: c, defaultTTL: defaultTTL}
}

// Get implements Cache.Get.
func (m *MemoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	e, ok := m.cache.GetIfPresent(key)
	if !ok {
		return "", false, nil
	}
	return e.value, true, nil
}

// Set implements Cache.Set.
func (m *MemoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	m.cache.Set(key, entry{value: value, ttl: ttl})
	return nil
}

// Delete implements Cache.Delete.
func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.cache.Invalidate(key)
	return nil
}

func (m *MemoryCache) Name() string { return "memory" }
