package cache

import (
	"context"
	"time"

	"github.com/dmitrymomot/lrucache/core/logger"
	"github.com/dmitrymomot/lrucache/pkg/async"
)

// LoadFunc produces the value for a key missing from the cache.
type LoadFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// GetOrLoad returns the cached value for key, or calls load and caches its result.
//
// load runs while the cache is held, so concurrent callers for any key wait for it
// and a key is never loaded twice. load must not call back into the cache.
// A load error is returned unchanged and nothing is cached.
// If ctx is done before the cache can be entered, ctx.Err() is returned and the
// cache is left untouched.
func (c *LRUCache[K, V]) GetOrLoad(ctx context.Context, key K, load LoadFunc[K, V]) (V, error) {
	if load == nil {
		var zero V
		return zero, ErrNilLoader
	}

	value, ev, err := c.getOrLoad(ctx, key, load)
	ev.deliver()
	return value, err
}

func (c *LRUCache[K, V]) getOrLoad(ctx context.Context, key K, load LoadFunc[K, V]) (V, *evicted[K, V], error) {
	var zero V

	release, err := c.gate.Acquire(ctx)
	if err != nil {
		return zero, nil, err
	}
	defer release()

	if value, ok := c.lookup(key); ok {
		return value, nil, nil
	}

	start := time.Now()
	value, err := load(ctx, key)
	c.loads.Add(1)
	if err != nil {
		c.loadErrors.Add(1)
		c.logger.DebugContext(ctx, "cache load failed",
			logger.Component("cache"),
			logger.Action("load"),
			logger.CacheKey(key),
			logger.Error(err),
			logger.Elapsed(start),
		)
		return zero, nil, err
	}

	return value, c.insert(key, value), nil
}

// LoadAsync runs GetOrLoad in the background and returns a future for its result.
// Calls made after LoadAsync returns may be applied before it.
func (c *LRUCache[K, V]) LoadAsync(ctx context.Context, key K, load LoadFunc[K, V]) *async.Future[V] {
	return async.Async(ctx, key, func(ctx context.Context, key K) (V, error) {
		return c.GetOrLoad(ctx, key, load)
	})
}
