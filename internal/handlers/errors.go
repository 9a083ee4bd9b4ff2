package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/apperrors"
)

// LoginPath is where an unauthenticated admin is sent.
const LoginPath = "/login"

// ErrorHandler renders every error as {"success": false, "error": msg}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, message := classify(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Method(), c.Path(), err)
	}

	body := fiber.Map{
		"success": false,
		"error":   message,
	}
	switch status {
	case fiber.StatusUnauthorized:
		body["redirect"] = LoginPath
	case fiber.StatusPreconditionRequired:
		body["confirm"] = true
	}
	return c.Status(status).JSON(body)
}

func classify(err error) (int, string) {
	var (
		fiberErr *fiber.Error
		authErr  *apperrors.AuthError
		valErr   *apperrors.ValidationError
		reqErr   *apperrors.RequestError
	)

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.As(err, &authErr):
		return fiber.StatusUnauthorized, authErr.Error()
	case errors.As(err, &valErr):
		return fiber.StatusUnprocessableEntity, valErr.Message
	case errors.Is(err, apperrors.ErrConfirmationRequired):
		return fiber.StatusPreconditionRequired, err.Error()
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, apperrors.ErrSessionPending):
		return fiber.StatusServiceUnavailable, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound, apperrors.Message(err)
	case errors.As(err, &reqErr):
		if reqErr.Unauthorized() {
			return fiber.StatusUnauthorized, reqErr.Message
		}
		return fiber.StatusBadGateway, reqErr.Message
	default:
		return fiber.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
