// Package cache provides a thread-safe, fixed-capacity LRU cache.
//
// # Features
//
//   - Generic type parameters for compile-time type safety
//   - LRU (Least Recently Used) eviction with a fixed capacity
//   - O(1) Get and Put: hash index plus an index-linked recency list
//   - All operations serialized through a FIFO gate (see core/gate)
//   - Read-through loading with GetOrLoad, held exclusively for the whole load
//   - Optional eviction callbacks for resource cleanup
//   - Hit, miss, eviction and load counters
//
// # Usage
//
//	import "github.com/dmitrymomot/lrucache/core/cache"
//
//	// Create a cache with capacity of 100 items
//	c, err := cache.NewLRUCache[string, *User](100)
//	if err != nil {
//		return err // capacity was not positive
//	}
//
//	// Store values
//	c.Put("user:123", &User{ID: 123, Name: "John"})
//	c.Put("user:456", &User{ID: 456, Name: "Jane"})
//
//	// Retrieve values
//	if user, found := c.Get("user:123"); found {
//		fmt.Printf("Found user: %s\n", user.Name)
//	}
//
//	// Remove values
//	if user, found := c.Remove("user:123"); found {
//		fmt.Printf("Removed user: %s\n", user.Name)
//	}
//
// A miss is not an error: Get returns the zero value and false.
//
// # LRU Semantics
//
// Get and Put both mark the key as most recently used. When Put adds a new key to
// a full cache, exactly one entry, the least recently used one, is evicted:
//
//	c := cache.MustNewLRUCache[string, int](2)
//	c.Put("a", 1)
//	c.Put("b", 2)
//	c.Get("a")    // a is now most recently used
//	c.Put("c", 3) // evicts b
//
// Peek and Contains inspect an entry without touching its recency.
// Keys lists the keys from most to least recently used.
//
// # Loading
//
// GetOrLoad fills a miss from a backing source. The load runs while the cache is
// held, so no other operation is applied until it finishes and a key is never
// loaded twice by racing callers:
//
//	user, err := c.GetOrLoad(ctx, "user:123", func(ctx context.Context, key string) (*User, error) {
//		return repo.FindByKey(ctx, key)
//	})
//
// A load error is returned unchanged and nothing is cached. Because the cache is
// held, a load function must not call methods of the same cache.
// LoadAsync runs the same operation in the background and returns an async.Future.
//
// # Eviction Callbacks
//
// Set up callbacks to handle resource cleanup when items are evicted:
//
//	connections := cache.MustNewLRUCache(50,
//		cache.WithEvictCallback[string, net.Conn](func(key string, conn net.Conn) {
//			conn.Close()
//		}),
//	)
//
// The callback runs after the cache is released, in the goroutine that caused the
// eviction. Remove and Clear do not call it.
//
// # Configuration
//
// Config carries the capacity with env tags for core/config:
//
//	var cfg cache.Config // CACHE_CAPACITY, default 128
//	config.MustLoad(&cfg)
//	c, err := cache.NewFromConfig[string, []byte](cfg)
//
// # Thread Safety
//
// All cache operations can be called concurrently from multiple goroutines.
// They are applied one at a time in arrival order, so the sequence of operations
// is a total order and each one sees every earlier one completely.
//
// # Performance Characteristics
//
//   - Get: O(1) average case
//   - Put: O(1) average case
//   - Remove: O(1) average case
//   - Keys: O(n)
//   - Memory: O(capacity)
//
// Entries live in a slice and link to each other by index; freed slots are reused,
// so steady-state Put does not allocate for the list.
package cache
