package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/example/shafran-admin/internal/apperrors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"fiber error", fiber.NewError(fiber.StatusBadRequest, "invalid request body"), http.StatusBadRequest, "invalid request body"},
		{"auth", &apperrors.AuthError{Message: "Login failed"}, http.StatusUnauthorized, "Login failed"},
		{"validation", apperrors.NewValidationError("photos", "Maximum %d photos allowed", 5), http.StatusUnprocessableEntity, "Maximum 5 photos allowed"},
		{"remote not found", fmt.Errorf("get product: %w", &apperrors.RequestError{Status: http.StatusNotFound, Message: "Failed to fetch product"}), http.StatusNotFound, "Failed to fetch product"},
		{"remote unauthorized", &apperrors.RequestError{Status: http.StatusUnauthorized, Message: "Failed to fetch products"}, http.StatusUnauthorized, "Failed to fetch products"},
		{"remote failure", &apperrors.RequestError{Status: http.StatusInternalServerError, Message: "Failed to fetch orders"}, http.StatusBadGateway, "Failed to fetch orders"},
		{"session pending", apperrors.ErrSessionPending, http.StatusServiceUnavailable, "session check in progress"},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized, "login required"},
		{"unconfirmed", apperrors.WithMessage(apperrors.ErrConfirmationRequired, "Sure?"), http.StatusPreconditionRequired, "Sure?"},
		{"unknown", errors.New("disk full"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}
