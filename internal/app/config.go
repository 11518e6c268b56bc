package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CatalogPath string // hcl file or directory; empty selects the built-in catalog
	BaseURL     string // overrides the catalog's base_url

	LogFormat string
	LogLevel  string

	Addr      string // serve listen address
	WarmLimit int    // concurrent resolutions during warm-up, 0 is unlimited
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.WarmLimit < 0 {
		return nil, errors.New("warm-limit cannot be negative")
	}

	return &cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding ones that
// are already set. An empty path tries ./.env and ignores its absence.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
