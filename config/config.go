package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string        `env:"BOOKSHELF_ADDR" envDefault:"127.0.0.1:8501"`
	File            string        `env:"BOOKSHELF_FILE" envDefault:"library.json"`
	Storage         string        `env:"BOOKSHELF_STORAGE" envDefault:"json"`
	SQLitePath      string        `env:"BOOKSHELF_SQLITE_PATH" envDefault:"library.db"`
	ShutdownTimeout time.Duration `env:"BOOKSHELF_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	RedisURL      string `env:"BOOKSHELF_REDIS_URL"`
	RedisPassword string `env:"BOOKSHELF_REDIS_PASSWORD"`
	RedisDB       int    `env:"BOOKSHELF_REDIS_DB" envDefault:"0"`
	ActivitySize  int    `env:"BOOKSHELF_ACTIVITY_SIZE" envDefault:"10"`

	LogLevel  string `env:"BOOKSHELF_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BOOKSHELF_LOG_FORMAT" envDefault:"text"`
	GinMode   string `env:"BOOKSHELF_GIN_MODE" envDefault:"release"`
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("BOOKSHELF_ADDR cannot be empty")
	}

	switch c.Storage {
	case "json":
		if c.File == "" {
			return fmt.Errorf("BOOKSHELF_FILE is required when BOOKSHELF_STORAGE is json")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("BOOKSHELF_SQLITE_PATH is required when BOOKSHELF_STORAGE is sqlite")
		}
	default:
		return fmt.Errorf("BOOKSHELF_STORAGE must be json or sqlite, got %q", c.Storage)
	}

	if c.ActivitySize < 1 {
		return fmt.Errorf("BOOKSHELF_ACTIVITY_SIZE must be at least 1")
	}

	if c.RedisDB < 0 {
		return fmt.Errorf("BOOKSHELF_REDIS_DB cannot be negative")
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("BOOKSHELF_SHUTDOWN_TIMEOUT must be positive")
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("BOOKSHELF_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("BOOKSHELF_GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}

	return nil
}

// Load reads an optional .env file, then the environment. It does not
// validate, so command flags can still override fields first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
