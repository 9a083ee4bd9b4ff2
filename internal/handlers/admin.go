package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/pages"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

// AdminHandler serves the dashboard and user management.
type AdminHandler struct {
	dashboard *pages.Dashboard
	users     *pages.Users
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(dashboard *pages.Dashboard, users *pages.Users) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, users: users}
}

type verifyRequest struct {
	Verified *bool `json:"verified"`
}

func (r verifyRequest) value() bool {
	return r.Verified == nil || *r.Verified
}

// DashboardStats returns the dashboard, fetching it on first use or with ?refresh=true.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	var err error
	if c.QueryBool("refresh") {
		err = h.dashboard.Load(c.UserContext())
	} else {
		err = h.dashboard.Ensure(c.UserContext())
	}
	if err != nil && apperrors.IsUnauthorized(err) {
		return err
	}
	return ok(c, h.dashboard.View())
}

// VerifyDashboardUser toggles verification of a user in the recent-users list.
// Body {"verified": bool}; omitted means true.
func (h *AdminHandler) VerifyDashboardUser(c *fiber.Ctx) error {
	var req verifyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	if err := h.dashboard.SetUserVerified(c.UserContext(), c.Params("id"), req.value()); err != nil {
		return err
	}
	h.users.Invalidate()
	return ok(c, h.dashboard.View())
}

// DeleteDashboardUser deletes a user from the dashboard and refetches it.
func (h *AdminHandler) DeleteDashboardUser(c *fiber.Ctx) error {
	if err := h.dashboard.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	h.users.Invalidate()
	return ok(c, h.dashboard.View())
}

// RegisterUserRoutes mounts the user list intents and mutations.
func (h *AdminHandler) RegisterUserRoutes(router fiber.Router, confirm fiber.Handler) {
	registerList[view.UserRow](router, h.users)
	router.Put("/:id/verify", h.VerifyUser)
	router.Delete("/:id", confirm, h.DeleteUser)
}

// VerifyUser toggles verification and patches the list in place.
func (h *AdminHandler) VerifyUser(c *fiber.Ctx) error {
	var req verifyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	if err := h.users.SetVerified(c.UserContext(), c.Params("id"), req.value()); err != nil {
		return err
	}
	h.dashboard.Invalidate()
	return ok(c, h.users.View(utils.ParsePagination(c)))
}

// DeleteUser deletes a user and refetches the list.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	h.dashboard.Invalidate()
	return ok(c, h.users.View(utils.ParsePagination(c)))
}
