package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/apperrors"
)

// SessionState is what the gate needs to know about the session.
type SessionState interface {
	Ready() bool
	IsAuthenticated() bool
}

// SessionGate holds protected routes until the start-up session check has
// finished, then admits only authenticated requests.
func SessionGate(session SessionState) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !session.Ready() {
			return apperrors.ErrSessionPending
		}
		if !session.IsAuthenticated() {
			return apperrors.ErrUnauthenticated
		}
		return c.Next()
	}
}
