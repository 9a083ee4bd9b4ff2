// Package apperrors defines the error taxonomy shared by the dashboard core.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound marks a fetched entity that the server reports as absent.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated is returned when a protected operation runs without a session.
	ErrUnauthenticated = errors.New("login required")

	// ErrConfirmationRequired is returned when a destructive intent arrives unconfirmed.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrSessionPending is returned while the start-up session check has not finished.
	ErrSessionPending = errors.New("session check in progress")
)

// messageError shows Message to the admin while matching its sentinel.
type messageError struct {
	message string
	err     error
}

func (e *messageError) Error() string { return e.message }
func (e *messageError) Unwrap() error { return e.err }

// WithMessage returns err with a different display message. errors.Is still
// matches err.
func WithMessage(err error, message string) error {
	if message == "" {
		return err
	}
	return &messageError{message: message, err: err}
}

// RequestError is a non-2xx response from the remote API.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: status %d: %s", e.Status, e.Message)
}

// Is lets a 404 RequestError match ErrNotFound.
func (e *RequestError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Unauthorized reports whether the server rejected the bearer token.
func (e *RequestError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// AuthError is a failed login. Cause holds the underlying request error, if any.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "login failed"
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// ValidationError is a client-side constraint violation detected before submit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsUnauthorized reports whether err carries a 401 from the remote API.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Unauthorized()
}

// Message converts err into the text shown inline on a page.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Error()
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}

	return err.Error()
}
