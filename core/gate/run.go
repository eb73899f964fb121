package gate

import "context"

// Run executes op while holding the gate. The gate is released when op returns,
// fails or panics, and op's error is returned unchanged.
//
// Exclusivity covers the whole of op, including any time it spends blocked on I/O.
//
// Example:
//
//	err := g.Run(ctx, func(ctx context.Context) error {
//		return writeSnapshot(ctx, state)
//	})
func (g *Gate) Run(ctx context.Context, op func(context.Context) error) error {
	release, err := g.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return op(ctx)
}

// Do is Run for operations that produce a value.
//
// Example:
//
//	n, err := gate.Do(ctx, g, func(ctx context.Context) (int, error) {
//		counter++
//		return counter, nil
//	})
func Do[T any](ctx context.Context, g *Gate, op func(context.Context) (T, error)) (T, error) {
	release, err := g.Acquire(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	defer release()

	return op(ctx)
}
