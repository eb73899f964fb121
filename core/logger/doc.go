// Package logger provides structured logging helpers built on log/slog.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/lrucache/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("lrudemo"),
//	)
//
//	log.Info("cache ready",
//		logger.Component("cache"),
//		logger.Capacity(128),
//	)
//
// New without options writes text records at info level to stdout.
// WithProduction switches to JSON at info level, WithDevelopment to text at debug level.
// Both tag every record with the service name and environment.
//
// # Attribute Helpers
//
// Helpers return the empty slog.Attr for nil or empty input, and slog drops
// empty attributes, so they can be passed unconditionally:
//
//	log.Debug("load finished",
//		logger.CacheKey(key),
//		logger.Error(err), // omitted when err == nil
//		logger.Elapsed(start),
//	)
//
// # Library Components
//
// Components in this module take a *slog.Logger through an option and fall back
// to Discard, so nothing is printed unless the application asks for it:
//
//	c, err := cache.NewLRUCache[string, []byte](1000,
//		cache.WithLogger[string, []byte](log),
//	)
//
// # Testing
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("hello", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
