// Package logger builds log/slog loggers with context extraction and
// optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.IDExtractor())
//
//	ctx := logger.ContextWithID(ctx, n)
//	log.InfoContext(ctx, "id issued", slog.String("short", short))
//	// {"level":"INFO","msg":"id issued","short":"k2v9x0ab","id":1834...}
//
// # Configuration
//
// [Config] is tagged for caarlos0/env and YAML. Start from [DefaultConfig]:
//
//	cfg := logger.DefaultConfig()
//	cfg.Level = slog.LevelDebug
//	cfg.Format = logger.FormatText
//	log := logger.NewFromConfig(cfg)
//
// Environment variables: LOG_LEVEL, LOG_FORMAT, SENTRY_DSN,
// SENTRY_ENVIRONMENT, SENTRY_MIN_LEVEL.
//
// # Sentry Integration
//
// When a DSN is configured, records go to stdout and Sentry. Errors become
// Sentry Issues; warnings are stored as logs unless MinLevel is error. If the
// DSN is empty or Sentry fails to initialize, logging continues on stdout.
//
// # Context Extractors
//
// A [ContextExtractor] pulls an attribute out of the context on every log
// call. [LogHandlerDecorator] applies extractors to any slog.Handler:
//
//	h := slog.NewJSONHandler(os.Stdout, nil)
//	log := slog.New(logger.NewLogHandlerDecorator(h, logger.IDExtractor()))
//
// [NewNope] returns a logger that discards everything, used as the default
// by components that accept an optional logger.
package logger
