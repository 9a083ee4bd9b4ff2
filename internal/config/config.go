package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort          string        `env:"APP_PORT" envDefault:"8080"`
	APIURL           string        `env:"ADMIN_API_URL"`
	AssetsURL        string        `env:"ADMIN_ASSETS_URL"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	CollationLocale  string        `env:"COLLATION_LOCALE" envDefault:"uz"`
	MaxProductPhotos int           `env:"MAX_PRODUCT_PHOTOS" envDefault:"5"`

	Storage StorageConfig

	TelegramBotToken  string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramAdminChat string `env:"TELEGRAM_ADMIN_CHAT_ID"`
}

// StorageConfig selects the durable local storage backend.
type StorageConfig struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	Path        string `env:"STORAGE_PATH" envDefault:"dashboard.db"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// Parse reads environment variables into a Config without touching .env files.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	cfg.AssetsURL = strings.TrimRight(strings.TrimSpace(cfg.AssetsURL), "/")
	if cfg.AssetsURL == "" {
		cfg.AssetsURL = cfg.APIURL
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("ADMIN_API_URL must be set")
	}
	if cfg.MaxProductPhotos <= 0 {
		return nil, fmt.Errorf("MAX_PRODUCT_PHOTOS must be positive, got %d", cfg.MaxProductPhotos)
	}

	return cfg, nil
}

// Load reads .env (if present) and environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	return cfg
}

// TelegramEnabled reports whether audit notifications can be delivered.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramAdminChat != ""
}
