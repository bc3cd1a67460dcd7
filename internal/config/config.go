package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"      envDefault:":5000"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MinPageSize     int           `env:"MIN_PAGE_SIZE"    envDefault:"1"`
	MaxPageSize     int           `env:"MAX_PAGE_SIZE"    envDefault:"20"`
	LoginPattern    string        `env:"LOGIN_PATTERN"    envDefault:"^[A-Za-z0-9_-]+$"`
	RateLimit       float64       `env:"RATE_LIMIT"`
	RateBurst       int           `env:"RATE_BURST"       envDefault:"20"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
}

const (
	defaultShutdownTimeout = 10 * time.Second
	defaultMinPageSize     = 1
	defaultMaxPageSize     = 20
	defaultRateBurst       = 20
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

func load(args []string, environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("usersapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, in-memory storage when empty")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MinPageSize, "min-page-size", cfg.MinPageSize, "Smallest page size served by the list endpoint")
	fs.IntVar(&cfg.MaxPageSize, "max-page-size", cfg.MaxPageSize, "Largest page size served by the list endpoint")
	fs.StringVar(&cfg.LoginPattern, "login-pattern", cfg.LoginPattern, "Regular expression a login must match")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second per client, 0 disables limiting")
	fs.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "Burst size for rate limiting")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MinPageSize <= 0 {
		cfg.MinPageSize = defaultMinPageSize
	}

	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = defaultMaxPageSize
	}

	if cfg.RateBurst <= 0 {
		cfg.RateBurst = defaultRateBurst
	}

	if cfg.RateLimit < 0 {
		cfg.RateLimit = 0
	}

	if cfg.MaxPageSize < cfg.MinPageSize {
		return nil, fmt.Errorf("max page size %d is less than min page size %d", cfg.MaxPageSize, cfg.MinPageSize)
	}

	if _, err := regexp.Compile(cfg.LoginPattern); err != nil {
		return nil, fmt.Errorf("invalid login pattern: %w", err)
	}

	return cfg, nil
}
