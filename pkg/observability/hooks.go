// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Hosts can register
// hooks at startup to receive events about layout recomputation, window
// selection, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, expvar, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// The grid calls hooks as it works:
//
//	observability.Layout().OnLayoutStart(itemCount, columnCount)
//	// ... pack items ...
//	observability.Layout().OnLayoutComplete(itemCount, positioned, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout recomputation.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a packing pass.
	OnLayoutStart(itemCount, columnCount int)

	// OnLayoutComplete records a finished pass. positioned is the number
	// of items that received geometry (measured items only).
	OnLayoutComplete(itemCount, positioned int, duration time.Duration)

	// OnLayoutMemoHit records a recompute request satisfied by the memo
	// (no inputs changed since the previous pass).
	OnLayoutMemoHit(itemCount int)
}

// =============================================================================
// Window Hooks
// =============================================================================

// WindowHooks receives events from window selection.
type WindowHooks interface {
	// OnWindow records one windowing pass: how many of the total items
	// fell inside the render window.
	OnWindow(visible, total int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(int, int)                   {}
func (NoopLayoutHooks) OnLayoutComplete(int, int, time.Duration) {}
func (NoopLayoutHooks) OnLayoutMemoHit(int)                      {}

// NoopWindowHooks is a no-op implementation of WindowHooks.
type NoopWindowHooks struct{}

func (NoopWindowHooks) OnWindow(int, int) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	windowHooks WindowHooks = NoopWindowHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any grid work.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetWindowHooks registers custom window hooks.
// This should be called once at application startup before any grid work.
func SetWindowHooks(h WindowHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		windowHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Window returns the registered window hooks.
func Window() WindowHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return windowHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	windowHooks = NoopWindowHooks{}
	cacheHooks = NoopCacheHooks{}
}
