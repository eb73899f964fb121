package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/lrucache/core/gate"
	"github.com/dmitrymomot/lrucache/core/logger"
)

// LRUCache is a fixed-capacity cache that evicts the least recently used entry.
//
// Every operation runs under a single FIFO gate, so concurrent calls are applied
// one at a time in arrival order and each observes the effects of all earlier ones.
// Reads count as use: Get moves the entry to the most recently used position.
type LRUCache[K comparable, V any] struct {
	gate     *gate.Gate
	capacity int

	// Guarded by gate.
	index   map[K]int
	list    *recencyList[K, V]
	onEvict EvictCallback[K, V]

	logger *slog.Logger

	size       atomic.Int64
	hits       atomic.Int64
	misses     atomic.Int64
	evictions  atomic.Int64
	loads      atomic.Int64
	loadErrors atomic.Int64
}

// evicted is an entry pushed out by the capacity bound. It is handed to the
// callback only after the gate is released, so the callback may use the cache.
type evicted[K comparable, V any] struct {
	key    K
	value  V
	notify EvictCallback[K, V]
}

func (e *evicted[K, V]) deliver() {
	if e != nil && e.notify != nil {
		e.notify(e.key, e.value)
	}
}

// NewLRUCache creates a cache holding at most capacity entries.
// It returns ErrInvalidCapacity if capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	c := &LRUCache[K, V]{
		gate:     gate.New(),
		capacity: capacity,
		index:    make(map[K]int, min(capacity, maxPrealloc)),
		list:     newRecencyList[K, V](capacity),
		logger:   logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNewLRUCache is NewLRUCache that panics on a configuration error.
func MustNewLRUCache[K comparable, V any](capacity int, opts ...Option[K, V]) *LRUCache[K, V] {
	c, err := NewLRUCache(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewFromConfig creates a cache from an environment-loaded Config.
func NewFromConfig[K comparable, V any](cfg Config, opts ...Option[K, V]) (*LRUCache[K, V], error) {
	return NewLRUCache(cfg.Capacity, opts...)
}

// Get returns the value stored for key and marks it most recently used.
// A miss returns the zero value and false and changes nothing.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	release := c.enter()
	defer release()

	return c.lookup(key)
}

// Put stores value for key. An existing entry is overwritten in place;
// a new one may push out the least recently used entry.
// Either way key becomes the most recently used.
func (c *LRUCache[K, V]) Put(key K, value V) {
	c.put(key, value).deliver()
}

func (c *LRUCache[K, V]) put(key K, value V) *evicted[K, V] {
	release := c.enter()
	defer release()

	return c.insert(key, value)
}

// Peek returns the value for key without changing its recency.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	release := c.enter()
	defer release()

	if i, ok := c.index[key]; ok {
		return c.list.slots[i].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is cached, without changing its recency.
func (c *LRUCache[K, V]) Contains(key K) bool {
	release := c.enter()
	defer release()

	_, ok := c.index[key]
	return ok
}

// Remove deletes key and returns the value it held.
// The evict callback is not called for explicit removals.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	release := c.enter()
	defer release()

	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	_, value := c.drop(i)
	return value, true
}

// Clear removes every entry. The evict callback is not called.
func (c *LRUCache[K, V]) Clear() {
	release := c.enter()
	defer release()

	clear(c.index)
	c.list.reset()
	c.size.Store(0)
}

// Len returns the number of cached entries.
func (c *LRUCache[K, V]) Len() int {
	release := c.enter()
	defer release()

	return len(c.index)
}

// Cap returns the capacity fixed at construction.
func (c *LRUCache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns the cached keys from most to least recently used.
func (c *LRUCache[K, V]) Keys() []K {
	release := c.enter()
	defer release()

	return c.list.keys()
}

// SetEvictCallback replaces the eviction callback. Pass nil to remove it.
func (c *LRUCache[K, V]) SetEvictCallback(fn EvictCallback[K, V]) {
	release := c.enter()
	defer release()

	c.onEvict = fn
}

// Stats returns the current counters. It does not wait for the gate,
// so it stays responsive while a slow load is in progress.
func (c *LRUCache[K, V]) Stats() Stats {
	return Stats{
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		Evictions:  c.evictions.Load(),
		Loads:      c.loads.Load(),
		LoadErrors: c.loadErrors.Load(),
		Len:        int(c.size.Load()),
		Capacity:   c.capacity,
	}
}

// enter acquires the gate for an operation that cannot be abandoned.
func (c *LRUCache[K, V]) enter() gate.Release {
	// Background is never done, so Acquire cannot fail here.
	release, _ := c.gate.Acquire(context.Background())
	return release
}

// The methods below require the gate to be held.

func (c *LRUCache[K, V]) lookup(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	c.list.moveToFront(i)
	return c.list.slots[i].value, true
}

func (c *LRUCache[K, V]) insert(key K, value V) *evicted[K, V] {
	if i, ok := c.index[key]; ok {
		c.list.slots[i].value = value
		c.list.moveToFront(i)
		return nil
	}

	i := c.list.alloc(key, value)
	c.index[key] = i
	c.list.pushFront(i)
	c.size.Add(1)

	if len(c.index) <= c.capacity {
		return nil
	}
	return c.evictOldest()
}

func (c *LRUCache[K, V]) evictOldest() *evicted[K, V] {
	i, ok := c.list.back()
	if !ok {
		return nil
	}
	key, value := c.drop(i)
	c.evictions.Add(1)

	c.logger.Debug("cache entry evicted",
		logger.Component("cache"),
		logger.Event("evicted"),
		logger.CacheKey(key),
		logger.Capacity(c.capacity),
	)

	return &evicted[K, V]{key: key, value: value, notify: c.onEvict}
}

// drop unlinks slot i, removes it from the index and frees it.
func (c *LRUCache[K, V]) drop(i int) (K, V) {
	s := c.list.slots[i]
	c.list.unlink(i)
	delete(c.index, s.key)
	c.list.release(i)
	c.size.Add(-1)
	return s.key, s.value
}
