// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env library
// for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/lrucache/core/config"
//
//	type AppConfig struct {
//		Cache    cache.Config
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		RedisURL string `env:"REDIS_URL,required"`
//	}
//
//	func main() {
//		var cfg AppConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Parse failures wrap ErrParsingConfig:
//
//	if errors.Is(err, config.ErrParsingConfig) {
//		// missing required variable or malformed value
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 AppConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 AppConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently.
package config
