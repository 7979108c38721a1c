package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the CLI configuration. The backend endpoint is deployment
// configuration; it is never derived from the authenticated session.
type Config struct {
	// APIURL is the base URL of the Papilon backend.
	APIURL string `env:"PAPILON_API_URL" envDefault:"http://localhost:5000"`

	// Logging configuration.
	LogLevel  string `env:"PAPILON_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PAPILON_LOG_FORMAT" envDefault:"console"`
}

// Load reads configuration from environment variables, with .env files as a
// convenience for development (missing files are ignored).
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("PAPILON_API_URL must not be empty")
	}

	return &cfg, nil
}
