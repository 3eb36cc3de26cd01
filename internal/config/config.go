package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	ProfileImage    string        `env:"PROFILE_IMAGE" envDefault:"img/profile.jpg"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	RevealThreshold float64       `env:"REVEAL_THRESHOLD" envDefault:"0.1"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads an optional .env file and parses the environment
func Load() (*Config, error) {
	// a missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RevealThreshold <= 0 || c.RevealThreshold > 1 {
		return fmt.Errorf("REVEAL_THRESHOLD must be in (0, 1], got %v", c.RevealThreshold)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %v", c.CacheTTL)
	}
	return nil
}

// ProfileImagePath returns the on-disk path of the profile image
func (c *Config) ProfileImagePath() string {
	return filepath.Join(c.StaticDir, filepath.FromSlash(c.ProfileImage))
}

// ProfileImageURL returns the URL the page uses for the profile image
func (c *Config) ProfileImageURL() string {
	return "/static/" + strings.TrimPrefix(c.ProfileImage, "/")
}

// ProfileImageAvailable reports whether the profile image exists on disk
func (c *Config) ProfileImageAvailable() bool {
	info, err := os.Stat(c.ProfileImagePath())
	return err == nil && !info.IsDir()
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}
	var handler slog.Handler
	if strings.EqualFold(c.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
