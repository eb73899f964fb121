package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrucache/core/cache"
	"github.com/dmitrymomot/lrucache/integration/database/redis"
)

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "empty", url: "", wantErr: redis.ErrEmptyConnectionURL},
		{name: "blank", url: "   ", wantErr: redis.ErrEmptyConnectionURL},
		{name: "wrong scheme", url: "http://localhost:6379", wantErr: redis.ErrFailedToParseRedisConnString},
		{name: "bad database", url: "redis://localhost:6379/notanumber", wantErr: redis.ErrFailedToParseRedisConnString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: tt.url})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, client)
		})
	}
}

func TestConnect_NotReady(t *testing.T) {
	t.Parallel()

	// Nothing listens on port 1.
	cfg := redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	}

	client, err := redis.Connect(context.Background(), cfg)
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
	assert.Nil(t, client)
}

func TestConnect_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := redis.Config{
		ConnectionURL: "redis://127.0.0.1:1/0",
		RetryAttempts: 5,
		RetryInterval: time.Second,
	}

	start := time.Now()
	_, err := redis.Connect(ctx, cfg)
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
	assert.Less(t, time.Since(start), time.Second)
}

func TestHealthcheck_Unreachable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	err := redis.Healthcheck(client)(context.Background())
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}

// connectForTest returns a live client or skips when REDIS_URL is not set.
func connectForTest(t *testing.T) *goredis.Client {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := redis.Connect(ctx, redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestHealthcheck_Live(t *testing.T) {
	client := connectForTest(t)

	assert.NoError(t, redis.Healthcheck(client)(context.Background()))
}

func TestLoader_Live(t *testing.T) {
	client := connectForTest(t)
	ctx := context.Background()

	prefix := "lrucache:test:" + uuid.NewString() + ":"
	require.NoError(t, client.Set(ctx, prefix+"present", "value", time.Minute).Err())
	t.Cleanup(func() { client.Del(context.Background(), prefix+"present") })

	c := cache.MustNewLRUCache[string, string](4)
	load := redis.Loader(client, prefix)

	v, err := c.GetOrLoad(ctx, "present", load)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	// Served from memory after the key is gone upstream.
	require.NoError(t, client.Del(ctx, prefix+"present").Err())
	v, err = c.GetOrLoad(ctx, "present", load)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = c.GetOrLoad(ctx, "absent", load)
	assert.ErrorIs(t, err, redis.ErrKeyNotFound)
	assert.False(t, c.Contains("absent"))
}
