// Package lrucache provides a fixed-capacity, concurrency-safe LRU cache whose
// operations are serialized through a first-in-first-out exclusive-access gate.
//
// # Package Organization
//
// The module is organized into four categories:
//
//   - Core: The cache, the gate and the ambient packages they rely on
//   - Utilities: Standalone packages for common functionality
//   - Integrations: Backing sources for read-through loading
//   - Application: Wiring of the above for the demo binary
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/lrucache/core/cache
//	go doc -all github.com/dmitrymomot/lrucache/core/gate
//
// # Core Packages
//
//	github.com/dmitrymomot/lrucache/core/cache     - Generic LRU cache with O(1) Get and Put
//	github.com/dmitrymomot/lrucache/core/gate      - FIFO exclusive-access gate with cancellable waits
//	github.com/dmitrymomot/lrucache/core/config    - Type-safe environment variable loading
//	github.com/dmitrymomot/lrucache/core/logger    - Structured logging built on log/slog
//	github.com/dmitrymomot/lrucache/core/health    - Liveness and readiness checks
//
// # Utility Packages
//
//	github.com/dmitrymomot/lrucache/pkg/async      - Futures for running work in the background
//
// # Integration Packages
//
//	github.com/dmitrymomot/lrucache/integration/database/redis - Redis client, health check and cache loader
//
// # Application
//
//	github.com/dmitrymomot/lrucache/app/simple     - Config, logger, cache and optional Redis source in one App
//	github.com/dmitrymomot/lrucache/cmd/lrudemo    - Demo binary: eviction trace, concurrent round trip, stats
//
// # Quick Start
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/dmitrymomot/lrucache/core/cache"
//	)
//
//	func main() {
//		c := cache.MustNewLRUCache[string, int](2)
//
//		c.Put("a", 1)
//		c.Put("b", 2)
//		c.Get("a")    // a becomes most recently used
//		c.Put("c", 3) // b is evicted
//
//		_, ok := c.Get("b")
//		fmt.Println(ok) // false
//	}
//
// The gate is usable on its own for any code that needs strictly ordered,
// exclusive access:
//
//	g := gate.New()
//	err := g.Run(ctx, func(ctx context.Context) error {
//		return writeSnapshot(ctx)
//	})
//
// For complete examples and detailed usage instructions, refer to the individual
// package documentation using the go doc command.
package lrucache
