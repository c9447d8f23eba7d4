package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/snowflake/pkg/logger"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), logger.IDExtractor()))

		ctx := logger.ContextWithID(context.Background(), 1234567890123)
		log.InfoContext(ctx, "id issued")

		rec := decodeLine(t, &buf)
		assert.Equal(t, "id issued", rec["msg"])
		assert.EqualValues(t, 1234567890123, rec["id"])
	})

	t.Run("skips absent values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), logger.IDExtractor()))

		log.InfoContext(context.Background(), "no id")

		rec := decodeLine(t, &buf)
		assert.NotContains(t, rec, "id")
	})

	t.Run("ignores nil extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil))

		assert.NotPanics(t, func() { log.Info("hello") })
		assert.Equal(t, "hello", decodeLine(t, &buf)["msg"])
	})

	t.Run("keeps extractors across With and WithGroup", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), logger.IDExtractor())).
			With(slog.Int("machine_id", 7)).
			WithGroup("gen")

		log.InfoContext(logger.ContextWithID(context.Background(), 42), "issued")

		rec := decodeLine(t, &buf)
		assert.EqualValues(t, 7, rec["machine_id"])
		group, ok := rec["gen"].(map[string]any)
		require.True(t, ok, "expected group in %v", rec)
		assert.EqualValues(t, 42, group["id"])
	})
}

func TestIDFromContext(t *testing.T) {
	t.Parallel()

	_, ok := logger.IDFromContext(context.Background())
	assert.False(t, ok)

	n, ok := logger.IDFromContext(logger.ContextWithID(context.Background(), 99))
	assert.True(t, ok)
	assert.Equal(t, int64(99), n)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	t.Run("new", func(t *testing.T) {
		t.Parallel()

		log := logger.New()
		require.NotNil(t, log)
		assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
		assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("from config honours level", func(t *testing.T) {
		t.Parallel()

		cfg := logger.DefaultConfig()
		cfg.Level = slog.LevelDebug
		log := logger.NewFromConfig(cfg)
		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("sentry without dsn falls back to stdout", func(t *testing.T) {
		t.Parallel()

		log := logger.NewWithSentry(logger.SentryConfig{})
		require.NotNil(t, log)
		assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("nope discards", func(t *testing.T) {
		t.Parallel()

		log := logger.NewNope()
		assert.NotPanics(t, func() { log.Error("dropped") })
	})
}
