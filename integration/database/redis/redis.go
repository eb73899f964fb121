package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect parses cfg.ConnectionURL, opens a client and pings it until it answers.
// Failed pings are retried cfg.RetryAttempts times with a doubling interval.
// The whole attempt is bounded by cfg.ConnectTimeout when it is set.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := parseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)
	if err := waitReady(ctx, client, cfg.RetryAttempts, cfg.RetryInterval); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// Healthcheck returns a function that pings the client.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

func parseURL(connURL string) (*redis.Options, error) {
	if strings.TrimSpace(connURL) == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(connURL, "redis://") && !strings.HasPrefix(connURL, "rediss://") {
		return nil, fmt.Errorf("%w: unsupported scheme", ErrFailedToParseRedisConnString)
	}

	opts, err := redis.ParseURL(connURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}
	return opts, nil
}

func waitReady(ctx context.Context, client *redis.Client, attempts int, interval time.Duration) error {
	attempts = max(attempts, 1)

	var lastErr error
	for attempt := range attempts {
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return nil
		}
		if attempt == attempts-1 {
			break
		}

		wait := interval << attempt
		select {
		case <-ctx.Done():
			return errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(wait):
		}
	}

	return errors.Join(ErrRedisNotReady, lastErr)
}
