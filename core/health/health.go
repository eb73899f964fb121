package health

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/lrucache/core/logger"
)

// ErrNotReady is returned by a readiness check when a dependency fails.
var ErrNotReady = errors.New("service not ready")

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// Liveness indicates the process is running. It never fails.
func Liveness() Check {
	return func(context.Context) error { return nil }
}

// Readiness verifies every dependency in order and stops at the first failure.
// The failure is logged and returned joined with ErrNotReady.
// Nil checks are skipped.
func Readiness(log *slog.Logger, checks ...func(context.Context) error) Check {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx context.Context) error {
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed", logger.Error(err))
				return errors.Join(ErrNotReady, err)
			}
		}
		return nil
	}
}
