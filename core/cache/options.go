package cache

import "log/slog"

// EvictCallback is called with an entry pushed out by the capacity bound.
type EvictCallback[K comparable, V any] func(key K, value V)

// Option configures an LRUCache.
type Option[K comparable, V any] func(*LRUCache[K, V])

// WithLogger sets the logger for eviction and load diagnostics (debug level).
// A nil logger is ignored.
func WithLogger[K comparable, V any](logger *slog.Logger) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEvictCallback registers fn to be called for every capacity eviction.
func WithEvictCallback[K comparable, V any](fn EvictCallback[K, V]) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		c.onEvict = fn
	}
}
