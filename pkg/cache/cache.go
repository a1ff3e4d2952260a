// Package cache provides caching for computed layouts.
//
// Laying out a large library is cheap but not free, and the layout and
// serve commands recompute the same manifest with the same options over
// and over. The cache stores serialized layout results keyed on the
// manifest content hash plus the layout options, so an unchanged input
// is a cache hit.
//
// Three implementations are provided:
//   - FileCache: persistent, for CLI usage across invocations
//   - MemoryCache: in-process, for the inspection server
//   - NullCache: disabled caching, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
// All implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found; an expired or corrupt entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts are the layout options that affect the cache key.
// Two layouts of the same items with any differing option are distinct
// cache entries.
type LayoutKeyOpts struct {
	ColumnCount    int
	ContainerWidth float64
	Gap            float64
}

// WindowKeyOpts are the viewport options that affect a window cache key.
type WindowKeyOpts struct {
	ScrollTop       float64
	ContainerHeight float64
	Buffer          float64
}

// Keyer generates cache keys for the cacheable artifacts.
// Using an interface here lets callers scope keys (see ScopedKeyer)
// without the cache backends knowing about namespaces.
type Keyer interface {
	// LayoutKey generates a key for a computed layout.
	// itemsHash is the content hash of the item list (see Hash).
	LayoutKey(itemsHash string, opts LayoutKeyOpts) string

	// WindowKey generates a key for a computed visible window.
	// layoutHash is the content hash of the serialized layout.
	WindowKey(layoutHash string, opts WindowKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(itemsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", itemsHash, opts)
}

// WindowKey generates a key for a computed visible window.
func (k *DefaultKeyer) WindowKey(layoutHash string, opts WindowKeyOpts) string {
	return hashKey("window", layoutHash, opts)
}
