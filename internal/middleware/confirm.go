package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/apperrors"
)

// ConfirmHeader carries an explicit confirmation for destructive requests.
const ConfirmHeader = "X-Confirm"

// RequireConfirmation rejects a request with 428 unless it carries
// ?confirm=true or an X-Confirm: true header. prompt is shown to the admin.
func RequireConfirmation(prompt string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.QueryBool("confirm") || strings.EqualFold(strings.TrimSpace(c.Get(ConfirmHeader)), "true") {
			return c.Next()
		}
		return apperrors.WithMessage(apperrors.ErrConfirmationRequired, prompt)
	}
}
