package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all environment backed configuration for the chat server.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Chat gateway
	SystemPrompt string `env:"SYSTEM_PROMPT"`

	// Generated images
	ImageStoragePath string `env:"IMAGE_STORAGE_PATH" envDefault:"./data/generated"`

	// Cost accounting. Persisted costs are USD; ExchangeRate converts them to
	// the display currency at read time.
	ExchangeRate float64 `env:"EXCHANGE_RATE" envDefault:"1400"`

	// Auth
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Observability / Logging
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"chat-server"`
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`
}

// Load parses environment variables into Config and performs minimal
// validation. A .env file in the working directory is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ExchangeRate <= 0 {
		return nil, fmt.Errorf("EXCHANGE_RATE must be positive, got %v", cfg.ExchangeRate)
	}
	if cfg.BcryptCost < 10 {
		return nil, fmt.Errorf("BCRYPT_COST must be at least 10, got %d", cfg.BcryptCost)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, nil
}

var Version = "dev"
