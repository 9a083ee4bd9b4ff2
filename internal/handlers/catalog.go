package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/models"
)

// CategoryLister lists product categories.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// CatalogHandler serves catalog reference data.
type CatalogHandler struct {
	categories CategoryLister
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(categories CategoryLister) *CatalogHandler {
	return &CatalogHandler{categories: categories}
}

// ListCategories returns all categories.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return ok(c, categories)
}
