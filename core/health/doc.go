// Package health aggregates dependency checks for liveness and readiness probes.
//
// Checks:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//
// Usage:
//
//	ready := health.Readiness(logger,
//		redis.Healthcheck(client),
//	)
//	if err := ready(ctx); err != nil {
//		// at least one dependency is down; err wraps ErrNotReady
//	}
//
// Dependency checks must follow func(context.Context) error signature:
//
//	func checkSource(ctx context.Context) error {
//		return client.Ping(ctx).Err()
//	}
package health
