// Package session owns the admin's authentication state.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/utils"
)

// Authenticator exchanges credentials for an access token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Store is the single source of truth for "is the admin logged in".
// Until CheckSession has run, Ready reports false and protected views must wait.
type Store struct {
	tokens *Tokens
	authn  Authenticator

	mu            sync.RWMutex
	ready         bool
	authenticated bool
}

func New(tokens *Tokens, authn Authenticator) *Store {
	return &Store{tokens: tokens, authn: authn}
}

// Info is the session as reported to the presentation layer.
type Info struct {
	Authenticated bool       `json:"authenticated"`
	Subject       string     `json:"subject,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// Token implements services.TokenSource.
func (s *Store) Token() string {
	return s.tokens.Token()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Ready reports whether CheckSession has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// CheckSession marks the session authenticated when a token is persisted.
// It returns false when the caller must send the admin to the login entry.
func (s *Store) CheckSession(ctx context.Context) (bool, error) {
	_, ok, err := s.tokens.Load(ctx)

	s.mu.Lock()
	s.authenticated = err == nil && ok
	s.ready = true
	authenticated := s.authenticated
	s.mu.Unlock()

	if err != nil {
		return false, err
	}
	if !authenticated {
		log.Println("[Session] no persisted token, login required")
	}
	return authenticated, nil
}

// Login authenticates against the API and persists the token. Rejected
// credentials return *apperrors.AuthError; any other failure is returned
// wrapped. Nothing is written on failure.
func (s *Store) Login(ctx context.Context, username, password string) error {
	token, err := s.authn.Login(ctx, username, password)
	if err != nil {
		log.Printf("[Session] login for %q failed: %v", username, err)
		if rejectedCredentials(err) {
			return &apperrors.AuthError{Message: "Login failed", Cause: err}
		}
		return fmt.Errorf("login: %w", err)
	}

	if err := s.tokens.Set(ctx, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.authenticated = true
	s.ready = true
	s.mu.Unlock()

	log.Printf("[Session] %q logged in", username)
	return nil
}

func rejectedCredentials(err error) bool {
	var reqErr *apperrors.RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	return reqErr.Status == http.StatusUnauthorized || reqErr.Status == http.StatusForbidden
}

// Logout clears the token and marks the session unauthenticated.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()

	return s.tokens.Clear(ctx)
}

// ForceLogout ends the session after the API rejected the token.
func (s *Store) ForceLogout() {
	if !s.IsAuthenticated() {
		return
	}
	log.Println("[Session] token rejected by API, logging out")
	if err := s.Logout(context.Background()); err != nil {
		log.Printf("[Session] forced logout: %v", err)
	}
}

// Info describes the current session. Subject and expiry are filled in only
// when the token is a JWT.
func (s *Store) Info() Info {
	info := Info{Authenticated: s.IsAuthenticated()}
	if !info.Authenticated {
		return info
	}

	if claims, ok := utils.InspectToken(s.tokens.Token()); ok {
		info.Subject = claims.Subject
		if !claims.ExpiresAt.IsZero() {
			exp := claims.ExpiresAt
			info.ExpiresAt = &exp
		}
	}
	return info
}
