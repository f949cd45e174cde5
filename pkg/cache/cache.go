// Package cache stores rendered axis artifacts.
//
// Rendering an axis is cheap, but the CLI and the HTTP server are often
// asked for the same picture repeatedly. Both look up an [ArtifactKey]
// before rendering and store the encoded bytes afterwards.
//
// Backends:
//   - [NullCache]: stores nothing (--no-cache)
//   - [FileCache]: one file per entry under the user cache directory
//   - [RedisCache]: shared cache for server deployments
//
// [Scoped] prefixes keys so that several binaries or versions can share a
// backend, and [Instrumented] reports hits and misses to the
// observability hooks.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour
