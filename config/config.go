// Package config loads the networth configuration from the environment,
// optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/networth"
	"github.com/joho/godotenv"
)

type Config struct {
	Currency      string        `env:"NETWORTH_CURRENCY" envDefault:"CHF"`
	LogLevel      string        `env:"NETWORTH_LOG_LEVEL" envDefault:"warn"`
	WatchInterval time.Duration `env:"NETWORTH_WATCH_INTERVAL" envDefault:"1h"`
	EODHD         EODHD
	Cache         Cache
}

type EODHD struct {
	APIKey            string        `env:"EODHD_API_KEY" envDefault:"demo"`
	BaseURL           string        `env:"EODHD_BASE_URL" envDefault:"https://eodhd.com/api"`
	Timeout           time.Duration `env:"EODHD_TIMEOUT" envDefault:"30s"`
	RequestsPerSecond float64       `env:"EODHD_RPS" envDefault:"5"`
	Burst             int           `env:"EODHD_BURST" envDefault:"5"`
}

// Cache selects where EODHD responses are cached.
type Cache struct {
	Backend       string `env:"NETWORTH_CACHE" envDefault:"disk"` // disk, redis or none
	Dir           string `env:"NETWORTH_CACHE_DIR" envDefault:""` // os.TempDir() when empty
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Cache backends.
const (
	CacheDisk  = "disk"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Load reads the files (".env" when none), then parses and checks the environment.
// Missing files are ignored, and variables already set are never overridden.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	opts := env.Options{RequiredIfNoDef: true}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that env parsing cannot.
func (c *Config) Validate() error {
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if err := networth.ValidateCurrency(c.Currency); err != nil {
		return fmt.Errorf("NETWORTH_CURRENCY: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("NETWORTH_LOG_LEVEL: %w", err)
	}
	switch c.Cache.Backend {
	case CacheDisk, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("NETWORTH_CACHE: unknown backend %q, want %s, %s or %s", c.Cache.Backend, CacheDisk, CacheRedis, CacheNone)
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("NETWORTH_WATCH_INTERVAL: must be positive, got %v", c.WatchInterval)
	}
	return nil
}

// Level returns the slog level of LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
