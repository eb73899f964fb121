package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/lrucache/core/cache"
)

// Loader returns a cache.LoadFunc that reads string values from Redis.
// Keys are looked up as prefix+key. A missing key yields ErrKeyNotFound.
//
//	users := cache.MustNewLRUCache[string, string](1000)
//	name, err := users.GetOrLoad(ctx, "42", redis.Loader(client, "user:"))
func Loader(client redis.Cmdable, prefix string) cache.LoadFunc[string, string] {
	return func(ctx context.Context, key string) (string, error) {
		value, err := client.Get(ctx, prefix+key).Result()
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		if err != nil {
			return "", err
		}
		return value, nil
	}
}
