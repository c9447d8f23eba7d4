package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/dmitrymomot/snowflake/pkg/config"
	"github.com/dmitrymomot/snowflake/pkg/health"
	"github.com/dmitrymomot/snowflake/pkg/id"
	"github.com/dmitrymomot/snowflake/pkg/logger"
)

type appConfig struct {
	ID  id.Config     `yaml:"id"`
	Log logger.Config `yaml:"log"`
}

func main() {
	ctx := context.Background()

	cfg := appConfig{ID: id.DefaultConfig(), Log: logger.DefaultConfig()}
	if err := config.Load(&cfg, config.WithOptionalFile(getEnv("CONFIG_FILE", "config.yaml"))); err != nil {
		logger.New().Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.NewFromConfig(cfg.Log, logger.IDExtractor())

	// Machine and datacenter IDs come from deployment configuration
	gen, err := id.NewFromConfig(cfg.ID, id.WithLogger(log))
	if err != nil {
		log.Error("invalid generator configuration", "error", err)
		os.Exit(1)
	}

	resp := health.Run(ctx, health.Checks{"id-clock": gen.Healthcheck()}, health.WithLogger(log))
	if err := resp.Err(); err != nil {
		log.Error("generator unhealthy", "error", err)
		os.Exit(1)
	}

	count, err := strconv.Atoi(getEnv("COUNT", "5"))
	if err != nil || count <= 0 {
		log.Error("COUNT must be a positive integer", "value", os.Getenv("COUNT"))
		os.Exit(1)
	}

	ids, err := gen.GenerateBatch(count)
	if err != nil {
		log.Error("failed to generate ids", "error", err, "generated", len(ids))
		os.Exit(1)
	}

	for _, n := range ids {
		encoded := gen.EncodeID(n)
		short, err := gen.ShortenID(n, 0)
		if err != nil {
			log.Error("failed to shorten id", "error", err)
			os.Exit(1)
		}

		parts := gen.Decompose(n)
		log.InfoContext(logger.ContextWithID(ctx, n), "id issued",
			slog.String("encoded", encoded),
			slog.String("short", short),
			slog.Time("issued_at", gen.Time(n)),
			slog.Int64("sequence", parts.Sequence),
		)
	}
}

// getEnv returns environment variable value or default if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
