// Package gate provides a queued mutual-exclusion primitive.
//
// A Gate admits at most one holder at a time. Callers that arrive while the gate
// is held wait in a FIFO queue and are admitted strictly in arrival order: on
// release, ownership passes directly to the oldest waiter. As long as every
// holder eventually releases, no waiter starves.
//
// # Usage
//
//	g := gate.New()
//
//	release, err := g.Acquire(ctx)
//	if err != nil {
//		return err // ctx was done before our turn came
//	}
//	defer release()
//
// Run and Do wrap the acquire/release pair around an operation and guarantee the
// release on every exit path, including panics:
//
//	err := g.Run(ctx, func(ctx context.Context) error {
//		return flush(ctx)
//	})
//
//	user, err := gate.Do(ctx, g, func(ctx context.Context) (*User, error) {
//		return repo.Load(ctx, id)
//	})
//
// Errors returned by the operation are passed back unchanged, so errors.Is and
// errors.As keep working on them.
//
// # Cancellation
//
// A waiter whose context is done leaves the queue and gets ctx.Err(). If the
// gate was handed to it at the same moment, it hands the gate on to the next
// waiter. Either way the queue behind it is undisturbed.
//
// # Reentrancy
//
// The gate is not reentrant. Acquiring it from inside an operation that already
// holds it blocks forever. This is a programming error and is not detected.
package gate
