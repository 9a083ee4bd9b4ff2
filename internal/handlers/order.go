package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/pages"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

// OrderHandler serves the order list and the single-order page.
type OrderHandler struct {
	orders    *pages.Orders
	detail    *pages.OrderDetail
	dashboard pages.Invalidator
}

// NewOrderHandler constructs an OrderHandler. dashboard is marked stale
// after every order change.
func NewOrderHandler(orders *pages.Orders, detail *pages.OrderDetail, dashboard pages.Invalidator) *OrderHandler {
	return &OrderHandler{orders: orders, detail: detail, dashboard: dashboard}
}

// RegisterOrderRoutes mounts order routes. confirm guards destructive intents.
func (h *OrderHandler) RegisterOrderRoutes(router fiber.Router, confirm fiber.Handler) {
	registerList[view.OrderRow](router, h.orders)
	router.Get("/statuses", h.ListStatuses)
	router.Get("/:number", h.GetOrder)
	router.Put("/:number/status", confirm, h.UpdateStatus)
	router.Delete("/:id", confirm, h.DeleteOrder)
}

// ListStatuses returns the statuses an admin can assign.
func (h *OrderHandler) ListStatuses(c *fiber.Ctx) error {
	return ok(c, view.OrderStatuses())
}

// GetOrder fetches one order by its number.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	if err := h.detail.Open(c.UserContext(), c.Params("number")); err != nil {
		return err
	}
	return ok(c, h.detail.View())
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus changes an order's status.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req orderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Status = strings.TrimSpace(req.Status)
	if req.Status == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if err := h.detail.UpdateStatus(c.UserContext(), c.Params("number"), req.Status); err != nil {
		return err
	}
	h.orders.Invalidate()
	h.dashboard.Invalidate()
	return ok(c, h.detail.View())
}

// DeleteOrder deletes an order and refetches the list.
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.orders.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	h.dashboard.Invalidate()
	return ok(c, h.orders.View(utils.ParsePagination(c)))
}
