package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/storage"
)

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ProfileHandler stores the admin's display preferences.
type ProfileHandler struct {
	store storage.Storage
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(store storage.Storage) *ProfileHandler {
	return &ProfileHandler{store: store}
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// GetTheme returns the stored theme, light by default.
func (h *ProfileHandler) GetTheme(c *fiber.Ctx) error {
	theme, found, err := h.store.Get(c.UserContext(), storage.KeyTheme)
	if err != nil {
		return err
	}
	if !found {
		theme = ThemeLight
	}
	return ok(c, fiber.Map{"theme": theme})
}

// SetTheme stores the theme.
func (h *ProfileHandler) SetTheme(c *fiber.Ctx) error {
	var req themeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Theme != ThemeLight && req.Theme != ThemeDark {
		return fiber.NewError(fiber.StatusBadRequest, "theme must be light or dark")
	}

	if err := h.store.Set(c.UserContext(), storage.KeyTheme, req.Theme); err != nil {
		return err
	}
	return ok(c, fiber.Map{"theme": req.Theme})
}
