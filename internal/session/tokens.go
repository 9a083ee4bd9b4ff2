package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/shafran-admin/internal/storage"
)

// Tokens holds the bearer token in memory and mirrors it into durable
// storage. It is the single place the token is read from.
type Tokens struct {
	storage storage.Storage

	mu    sync.RWMutex
	token string
}

func NewTokens(st storage.Storage) *Tokens {
	return &Tokens{storage: st}
}

// Token returns the cached token, "" when there is none.
func (t *Tokens) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// Load refreshes the cache from durable storage.
func (t *Tokens) Load(ctx context.Context) (string, bool, error) {
	token, ok, err := t.storage.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return "", false, fmt.Errorf("read access token: %w", err)
	}
	if token == "" {
		ok = false
	}

	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
	return token, ok, nil
}

// Set persists token, then caches it.
func (t *Tokens) Set(ctx context.Context, token string) error {
	if err := t.storage.Set(ctx, storage.KeyAccessToken, token); err != nil {
		return fmt.Errorf("persist access token: %w", err)
	}

	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
	return nil
}

// Clear drops the cached token and removes it from storage.
func (t *Tokens) Clear(ctx context.Context) error {
	t.mu.Lock()
	t.token = ""
	t.mu.Unlock()

	if err := t.storage.Remove(ctx, storage.KeyAccessToken); err != nil {
		return fmt.Errorf("remove access token: %w", err)
	}
	return nil
}
