// Package storage provides the durable key/value store that survives
// dashboard restarts, the server-side counterpart of browser local storage.
package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/example/shafran-admin/internal/config"
)

// Well-known keys.
const (
	KeyAccessToken = "accessToken"
	KeyTheme       = "theme"
)

// Storage is a durable string key/value store.
type Storage interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open builds the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	log.Printf("[Storage] opening %q backend", cfg.Driver)

	switch cfg.Driver {
	case "", "sqlite":
		return OpenSQLite(ctx, cfg.Path)
	case "redis":
		return OpenRedis(ctx, cfg.RedisURL)
	case "postgres":
		return OpenPostgres(cfg.DatabaseURL)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
