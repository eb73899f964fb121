package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrucache/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("stats", slog.Int("hits", 1), slog.Int("misses", 2))
	require.Equal(t, "stats", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "hits", g[0].Key)
	assert.Equal(t, "misses", g[1].Key)
}

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Timing Tests
// ============================================================================

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

// ============================================================================
// Cache Tests
// ============================================================================

func TestCacheKey(t *testing.T) {
	t.Parallel()

	attr := logger.CacheKey("user:1")
	require.Equal(t, "cache_key", attr.Key)
	assert.Equal(t, "user:1", attr.Value.Any())

	attr = logger.CacheKey(42)
	assert.EqualValues(t, 42, attr.Value.Any())

	empty := logger.CacheKey(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestCapacityAndSize(t *testing.T) {
	t.Parallel()

	attr := logger.Capacity(128)
	require.Equal(t, "capacity", attr.Key)
	assert.Equal(t, int64(128), attr.Value.Int64())

	attr = logger.Size(7)
	require.Equal(t, "size", attr.Key)
	assert.Equal(t, int64(7), attr.Value.Int64())
}

// ============================================================================
// Generic Metadata Tests
// ============================================================================

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("cache")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "cache", attr.Value.String())
}

func TestEvent(t *testing.T) {
	t.Parallel()
	attr := logger.Event("evicted")
	require.Equal(t, "event", attr.Key)
	assert.Equal(t, "evicted", attr.Value.String())
}

func TestAction(t *testing.T) {
	t.Parallel()
	attr := logger.Action("load")
	require.Equal(t, "action", attr.Key)
	assert.Equal(t, "load", attr.Value.String())
}

func TestResult(t *testing.T) {
	t.Parallel()
	attr := logger.Result("miss")
	require.Equal(t, "result", attr.Key)
	assert.Equal(t, "miss", attr.Value.String())
}

func TestCount(t *testing.T) {
	t.Parallel()
	attr := logger.Count("evictions", 3)
	require.Equal(t, "evictions", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestKey(t *testing.T) {
	t.Parallel()

	attr := logger.Key("custom", "value")
	require.Equal(t, "custom", attr.Key)
	assert.Equal(t, "value", attr.Value.Any())

	type testStruct struct {
		Name string
	}
	s := testStruct{Name: "test"}
	attr = logger.Key("data", s)
	require.Equal(t, "data", attr.Key)
	assert.Equal(t, s, attr.Value.Any())

	empty := logger.Key("key", nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRetryCount(t *testing.T) {
	t.Parallel()
	attr := logger.RetryCount(5)
	require.Equal(t, "retry_count", attr.Key)
	assert.Equal(t, int64(5), attr.Value.Int64())
}
