// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds everything the server reads from the environment
type Config struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`

	StorageType      string `env:"STORAGE_TYPE"      envDefault:"memory"`
	StorageNamespace string `env:"STORAGE_NAMESPACE" envDefault:"boardgames"`

	RedisURL      string        `env:"REDIS_URL"       envDefault:"redis://localhost:6379"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisTTL      time.Duration `env:"REDIS_TTL"       envDefault:"0s"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"scorekeeper.db"`

	EverdellMaxPlayers int `env:"EVERDELL_MAX_PLAYERS" envDefault:"4"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Validate rejects settings the server cannot start with
func (c Config) Validate() error {
	switch c.StorageType {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be memory, redis or sqlite", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.EverdellMaxPlayers < 1 {
		return fmt.Errorf("invalid EVERDELL_MAX_PLAYERS %d", c.EverdellMaxPlayers)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LOG_LEVEL (debug, info, warn, error) into a slog level
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
