package simple

import (
	"context"
	"errors"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/lrucache/core/cache"
	"github.com/dmitrymomot/lrucache/core/config"
	"github.com/dmitrymomot/lrucache/core/health"
	"github.com/dmitrymomot/lrucache/core/logger"
	"github.com/dmitrymomot/lrucache/integration/database/redis"
)

type App struct {
	config Config
	cache  *cache.LRUCache[string, string]
	load   cache.LoadFunc[string, string]
	redis  *goredis.Client
	logger *slog.Logger
}

type AppOption func(*App) error

// NewApp loads Config from the environment and builds the application.
func NewApp(ctx context.Context, opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewAppFromConfig(ctx, cfg, opts...)
}

// NewAppFromConfig builds the application from an explicit Config.
// When Redis is enabled and no loader was supplied, cache misses are read from Redis.
func NewAppFromConfig(ctx context.Context, cfg Config, opts ...AppOption) (*App, error) {
	app := &App{
		config: cfg,
		logger: newLogger(cfg),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.cache == nil {
		c, err := cache.NewFromConfig(app.config.Cache,
			cache.WithLogger[string, string](app.logger),
		)
		if err != nil {
			return nil, err
		}
		app.cache = c
	}

	if app.load == nil && app.config.RedisEnabled {
		client, err := redis.Connect(ctx, app.config.Redis)
		if err != nil {
			return nil, err
		}
		app.redis = client
		app.load = redis.Loader(client, app.config.Redis.KeyPrefix)
		app.logger.InfoContext(ctx, "redis source connected", logger.Component("app"))
	}

	return app, nil
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithCache(c *cache.LRUCache[string, string]) AppOption {
	return func(app *App) error {
		if c == nil {
			return errors.New("cache cannot be nil")
		}
		app.cache = c
		return nil
	}
}

func WithLoader(load cache.LoadFunc[string, string]) AppOption {
	return func(app *App) error {
		if load == nil {
			return errors.New("loader cannot be nil")
		}
		app.load = load
		return nil
	}
}

func (a *App) Config() Config {
	return a.config
}

func (a *App) Cache() *cache.LRUCache[string, string] {
	return a.cache
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Lookup returns the value for key. Without a backing source a miss reports false;
// with one, the miss is loaded and cached.
func (a *App) Lookup(ctx context.Context, key string) (string, bool, error) {
	if a.load == nil {
		v, ok := a.cache.Get(key)
		return v, ok, nil
	}

	v, err := a.cache.GetOrLoad(ctx, key, a.load)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Healthcheck reports readiness. Without a backing source it is a liveness check.
func (a *App) Healthcheck(ctx context.Context) error {
	if a.redis == nil {
		return health.Liveness()(ctx)
	}
	return health.Readiness(a.logger, redis.Healthcheck(a.redis))(ctx)
}

// Close releases the backing source connection.
func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{}
	if cfg.Env == "production" {
		opts = append(opts, logger.WithProduction(cfg.AppName))
	} else {
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}
	return logger.New(append(opts, logger.WithLevelName(cfg.LogLevel))...)
}
