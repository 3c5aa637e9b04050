// Package config reads the service settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"dynamodb"`

	RollupTxMaxAttempts int `env:"ROLLUP_TX_MAX_ATTEMPTS" envDefault:"5"`

	DashboardBatchSize     int           `env:"DASHBOARD_BATCH_SIZE" envDefault:"10"`
	DashboardBatchInterval time.Duration `env:"DASHBOARD_BATCH_INTERVAL" envDefault:"200ms"`

	// MunicipalitiesFile overrides the embedded municipality -> state table.
	MunicipalitiesFile string `env:"MUNICIPALITIES_FILE"`
	FollowUpLinkBase   string `env:"FOLLOWUP_LINK_BASE" envDefault:"http://localhost:3000"`
	NotifyWebhookURL   string `env:"NOTIFY_WEBHOOK_URL"`

	// TraceStdout exports spans to stdout; without it spans go to the no-op provider.
	TraceStdout bool `env:"OTEL_TRACES_STDOUT" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StoreDriver != StoreDynamoDB && cfg.StoreDriver != StoreMemory {
		return Config{}, fmt.Errorf("parse env: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.DashboardBatchSize <= 0 || cfg.DashboardBatchSize > 10 {
		cfg.DashboardBatchSize = 10
	}
	if cfg.RollupTxMaxAttempts <= 0 {
		cfg.RollupTxMaxAttempts = 5
	}
	return cfg, nil
}
