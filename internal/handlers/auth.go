package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/session"
)

// AuthHandler bundles the session endpoints.
type AuthHandler struct {
	store *session.Store
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(store *session.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a persisted session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if err := h.store.Login(c.UserContext(), req.Username, req.Password); err != nil {
		return err
	}

	return ok(c, h.store.Info())
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.store.Logout(c.UserContext()); err != nil {
		return err
	}
	return ok(c, h.store.Info())
}

// Session reports whether the admin is logged in.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	if !h.store.Ready() {
		return apperrors.ErrSessionPending
	}
	return ok(c, h.store.Info())
}
