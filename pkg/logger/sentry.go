package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// NewWithSentry creates a logger that sends logs to both stdout and Sentry.
// If DSN is empty, only stdout logging is enabled (graceful fallback for local dev).
// Context extractors are applied to logs sent to both destinations.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	c := DefaultConfig()
	c.Sentry = cfg
	return NewFromConfig(c, extractors...)
}

// newSentryHandler initializes the Sentry SDK and returns a handler that
// turns errors into Issues and keeps warnings as searchable logs.
func newSentryHandler(cfg SentryConfig) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background()), nil
}

// sentryLogLevels lists the levels stored in Sentry for a minimum level.
// Only warnings and errors are ever forwarded.
func sentryLogLevels(minLevel slog.Level) []slog.Level {
	if minLevel >= slog.LevelError {
		return []slog.Level{slog.LevelError}
	}
	return []slog.Level{slog.LevelWarn, slog.LevelError}
}
