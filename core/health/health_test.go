package health_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lrucache/core/health"
	"github.com/dmitrymomot/lrucache/core/logger"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	assert.NoError(t, health.Liveness()(context.Background()))
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ok := func(context.Context) error { return nil }

	t.Run("no checks", func(t *testing.T) {
		assert.NoError(t, health.Readiness(nil)(ctx))
	})

	t.Run("all pass", func(t *testing.T) {
		assert.NoError(t, health.Readiness(logger.Discard(), ok, nil, ok)(ctx))
	})

	t.Run("stops at first failure", func(t *testing.T) {
		errDown := errors.New("source down")
		called := false
		var buf bytes.Buffer

		check := health.Readiness(logger.New(logger.WithOutput(&buf)),
			ok,
			func(context.Context) error { return errDown },
			func(context.Context) error { called = true; return nil },
		)

		err := check(ctx)
		assert.ErrorIs(t, err, health.ErrNotReady)
		assert.ErrorIs(t, err, errDown)
		assert.False(t, called)
		assert.Contains(t, buf.String(), "Readiness check failed")
	})
}
