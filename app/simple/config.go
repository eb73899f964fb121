package simple

import (
	"github.com/dmitrymomot/lrucache/core/cache"
	"github.com/dmitrymomot/lrucache/integration/database/redis"
)

type Config struct {
	Cache cache.Config
	Redis redis.Config

	AppName      string `env:"APP_NAME" envDefault:"lrudemo"`
	Env          string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	RedisEnabled bool   `env:"CACHE_REDIS_ENABLED" envDefault:"false"`
}
