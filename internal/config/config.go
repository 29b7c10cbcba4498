package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Logging LoggingConfig
	Names   NamesConfig
	Bulk    BulkConfig
}

type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE"`
}

type NamesConfig struct {
	DefaultStyle string `env:"NAMESHERPA_DEFAULT_STYLE" envDefault:"unique"`
	// Empty means the tables compiled into the binary.
	TablesDir string `env:"NAMESHERPA_TABLES_DIR"`
}

type BulkConfig struct {
	BatchSize int `env:"NAMESHERPA_BATCH_SIZE" envDefault:"10"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Bulk.BatchSize <= 0 {
		return fmt.Errorf("NAMESHERPA_BATCH_SIZE must be positive, got %d", c.Bulk.BatchSize)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
