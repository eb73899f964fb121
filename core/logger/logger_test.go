package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrucache/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "test")),
		)

		log.Info("cache ready", logger.Component("cache"), logger.Error(nil))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "cache ready", record["msg"])
		assert.Equal(t, "cache", record["component"])
		assert.Equal(t, "test", record["service"])
		assert.NotContains(t, record, "error")
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("development enables debug text output", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("lrudemo"), logger.WithOutput(&buf))

		log.Debug("evicted", logger.CacheKey("a"))
		out := buf.String()
		assert.Contains(t, out, "msg=evicted")
		assert.Contains(t, out, "service=lrudemo")
		assert.Contains(t, out, "cache_key=a")
	})

	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("lrudemo"), logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("shown")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "shown", record["msg"])
		assert.Equal(t, "production", record["env"])
	})

	t.Run("handler options are not mutated", func(t *testing.T) {
		opts := &slog.HandlerOptions{}
		_ = logger.New(logger.WithHandlerOptions(opts), logger.WithOutput(&bytes.Buffer{}))
		assert.Nil(t, opts.Level)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	require.NotNil(t, log)
	log.Error("nowhere")
}
