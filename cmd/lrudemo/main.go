package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lrucache/app/simple"
	"github.com/dmitrymomot/lrucache/core/cache"
	"github.com/dmitrymomot/lrucache/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := simple.NewApp(ctx)
	if err != nil {
		slog.Error("failed to start", logger.Error(err))
		os.Exit(1)
	}
	logger.SetAsDefault(app.Logger())

	runErr := run(ctx, app)
	if err := app.Close(); err != nil {
		app.Logger().Error("close", logger.Error(err))
	}
	if runErr != nil {
		app.Logger().Error("demo failed", logger.Error(runErr))
		os.Exit(1)
	}
}

func run(ctx context.Context, app *simple.App) error {
	log := app.Logger()

	evictionTrace(log)

	c := app.Cache()
	n := c.Cap()
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			c.Put(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gctx = errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			key := fmt.Sprintf("key-%d", i)
			v, ok, err := app.Lookup(gctx, key)
			if err != nil {
				return err
			}
			if !ok || v != fmt.Sprintf("value-%d", i) {
				return fmt.Errorf("%s: got %q, found=%t", key, v, ok)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.InfoContext(ctx, "concurrent round trip complete",
		logger.Count("operations", 2*n),
		logger.Elapsed(start),
	)

	// One more key than capacity pushes out the oldest entry.
	future := c.LoadAsync(ctx, "overflow", func(context.Context, string) (string, error) {
		return "late", nil
	})
	if _, err := future.AwaitWithTimeout(5 * time.Second); err != nil {
		return err
	}

	if err := app.Healthcheck(ctx); err != nil {
		return err
	}

	stats := c.Stats()
	log.InfoContext(ctx, "cache stats",
		logger.Group("stats",
			slog.Int64("hits", stats.Hits),
			slog.Int64("misses", stats.Misses),
			slog.Int64("evictions", stats.Evictions),
			slog.Int64("loads", stats.Loads),
			slog.Float64("hit_ratio", stats.HitRatio()),
		),
		logger.Size(stats.Len),
		logger.Capacity(stats.Capacity),
	)
	return nil
}

// evictionTrace walks the capacity-2 scenario: a and b are stored, a is read,
// c is stored and b, the least recently used entry, is evicted.
func evictionTrace(log *slog.Logger) {
	c := cache.MustNewLRUCache(2,
		cache.WithLogger[string, int](log),
		cache.WithEvictCallback[string, int](func(key string, value int) {
			log.Info("evict callback", logger.CacheKey(key), slog.Int("value", value))
		}),
	)

	c.Put("a", 1)
	c.Put("b", 2)
	a, _ := c.Get("a")
	log.Info("get a", slog.Int("value", a))

	c.Put("c", 3)

	_, ok := c.Get("b")
	log.Info("get b", logger.Result(hitOrMiss(ok)))
	_, ok = c.Get("f")
	log.Info("get f", logger.Result(hitOrMiss(ok)))
	log.Info("keys after eviction", slog.Any("keys", c.Keys()))
}

func hitOrMiss(ok bool) string {
	if ok {
		return "hit"
	}
	return "miss"
}
