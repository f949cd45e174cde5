package cache

import (
	"context"
	"time"

	"github.com/matzehuels/axis2d/pkg/observability"
)

// InstrumentedCache reports every lookup and write to the registered
// cache hooks under a fixed key type.
type InstrumentedCache struct {
	inner   Cache
	keyType string
}

// Instrumented wraps inner so that hits, misses and writes are reported
// as keyType.
func Instrumented(inner Cache, keyType string) *InstrumentedCache {
	return &InstrumentedCache{inner: inner, keyType: keyType}
}

// Get implements Cache.
func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.inner.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, c.keyType)
		} else {
			observability.Cache().OnCacheMiss(ctx, c.keyType)
		}
	}
	return data, ok, err
}

// Set implements Cache.
func (c *InstrumentedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, c.keyType, len(data))
	return nil
}

// Delete implements Cache.
func (c *InstrumentedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

// Close implements Cache.
func (c *InstrumentedCache) Close() error { return c.inner.Close() }

var _ Cache = (*InstrumentedCache)(nil)
