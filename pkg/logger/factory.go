package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewFromConfig(DefaultConfig(), extractors...)
}

// NewFromConfig creates a stdout logger honouring the configured level and
// format. When cfg.Sentry.DSN is set, records are also sent to Sentry.
// Unknown formats fall back to JSON.
func NewFromConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(os.Stdout, cfg), extractors...))
}

// newHandler builds the handler chain for cfg writing to w.
func newHandler(w io.Writer, cfg Config) slog.Handler {
	out := newOutputHandler(w, cfg)
	if cfg.Sentry.DSN == "" {
		return out
	}

	sentry, err := newSentryHandler(cfg.Sentry)
	if err != nil {
		// Graceful degradation: keep logging locally if Sentry init fails
		slog.New(out).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return out
	}
	return newMultiHandler(out, sentry)
}

func newOutputHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
