package cache

import (
	"context"
	"time"
)

// ScopedCache prefixes every key before passing it to the wrapped cache.
// It lets several binaries or versions share one backend:
//
//	shared := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: "localhost:6379"})
//	c := cache.Scoped(shared, "axis2d:"+buildinfo.Version+":")
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Scoped wraps inner with a key prefix. A nil inner is a NullCache.
func Scoped(inner Cache, prefix string) *ScopedCache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &ScopedCache{inner: inner, prefix: prefix}
}

// Get retrieves a prefixed key.
func (c *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores a prefixed key.
func (c *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes a prefixed key.
func (c *ScopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the wrapped cache.
func (c *ScopedCache) Close() error { return c.inner.Close() }

var _ Cache = (*ScopedCache)(nil)
