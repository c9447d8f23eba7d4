package logger

import "log/slog"

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env or YAML
// decoding; start from DefaultConfig so unset fields keep their defaults.
type Config struct {
	// Level accepts slog level names, case-insensitive: debug, info, warn, error.
	Level  slog.Level   `env:"LOG_LEVEL" yaml:"level"`
	Format string       `env:"LOG_FORMAT" yaml:"format"`
	Sentry SentryConfig `yaml:"sentry"`
}

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN" yaml:"dsn"`
	Environment string `env:"SENTRY_ENVIRONMENT" yaml:"environment"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" yaml:"min_level"`
}

// DefaultConfig returns JSON logging at info level with Sentry disabled.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Sentry: SentryConfig{
			Environment: "production",
			MinLevel:    slog.LevelWarn,
		},
	}
}
