// Package config loads server settings from the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultPort            = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
)

// Config holds the server settings.
type Config struct {
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	AllowedOrigins  []string
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables that are already set,
// then builds a Config. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables:
//
//	PORT                  listen port (default 8080)
//	LOG_LEVEL             zap level name (default info)
//	SHUTDOWN_TIMEOUT      Go duration (default 10s)
//	MAX_BODY_BYTES        request body limit in bytes (default 1 MiB)
//	CORS_ALLOWED_ORIGINS  comma separated origins (default *)
func FromEnv() (Config, error) {
	cfg := Config{
		Port:            envOr("PORT", DefaultPort),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxBodyBytes:    DefaultMaxBodyBytes,
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	var errs []error
	if p, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil || p == 0 {
		errs = append(errs, fmt.Errorf("PORT: invalid port %q", cfg.Port))
	}
	if cfg.LogLevel != "" {
		if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: invalid level %q", cfg.LogLevel))
		}
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: invalid duration %q", v))
		} else {
			cfg.ShutdownTimeout = d
		}
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("MAX_BODY_BYTES: invalid size %q", v))
		} else {
			cfg.MaxBodyBytes = n
		}
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
