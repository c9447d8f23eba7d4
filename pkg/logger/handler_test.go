package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		slog.New(newHandler(&buf, DefaultConfig())).Info("hello")
		assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cfg := DefaultConfig()
		cfg.Format = "TEXT"
		slog.New(newHandler(&buf, cfg)).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("unknown format falls back to json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cfg := DefaultConfig()
		cfg.Format = "xml"
		slog.New(newHandler(&buf, cfg)).Info("hello")
		assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cfg := DefaultConfig()
		cfg.Level = slog.LevelWarn
		log := slog.New(newHandler(&buf, cfg))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestSentryLogLevels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []slog.Level{slog.LevelWarn, slog.LevelError}, sentryLogLevels(slog.LevelWarn))
	assert.Equal(t, []slog.Level{slog.LevelWarn, slog.LevelError}, sentryLogLevels(slog.LevelInfo))
	assert.Equal(t, []slog.Level{slog.LevelError}, sentryLogLevels(slog.LevelError))
}

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("boom")
}

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	t.Run("fans out to enabled handlers", func(t *testing.T) {
		t.Parallel()

		var info, warn bytes.Buffer
		h := newMultiHandler(
			slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
			slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		)
		log := slog.New(h).With(slog.Int("machine_id", 3))

		log.Info("info only")
		assert.Contains(t, info.String(), "info only")
		assert.Empty(t, warn.String())

		log.Warn("both")
		assert.Contains(t, info.String(), "both")
		assert.Contains(t, warn.String(), "both")
		assert.Contains(t, warn.String(), `"machine_id":3`)
	})

	t.Run("delivers past a failing handler", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := newMultiHandler(failingHandler{}, slog.NewJSONHandler(&buf, nil))

		err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "still logged", 0))
		require.Error(t, err)
		assert.Contains(t, buf.String(), "still logged")
	})

	t.Run("disabled when no handler is enabled", func(t *testing.T) {
		t.Parallel()

		h := newMultiHandler(slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
		assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	})
}
