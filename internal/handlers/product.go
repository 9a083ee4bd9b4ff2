package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/models"
	"github.com/example/shafran-admin/internal/pages"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

// ProductHandler serves the product list, the deleted list and product detail editing.
type ProductHandler struct {
	products  *pages.Products
	deleted   *pages.DeletedProducts
	details   *pages.ProductDetails
	dashboard pages.Invalidator
}

// NewProductHandler constructs ProductHandler. dashboard is marked stale
// after every product change.
func NewProductHandler(products *pages.Products, deleted *pages.DeletedProducts, details *pages.ProductDetails, dashboard pages.Invalidator) *ProductHandler {
	return &ProductHandler{products: products, deleted: deleted, details: details, dashboard: dashboard}
}

// RegisterProductRoutes mounts product routes. confirm guards destructive intents.
func (h *ProductHandler) RegisterProductRoutes(router fiber.Router, confirm fiber.Handler) {
	registerList[view.ProductRow](router.Group("/deleted"), h.deleted)
	router.Put("/:id/restore", confirm, h.RestoreProduct)

	registerList[view.ProductRow](router, h.products)
	router.Post("/", h.CreateProduct)
	router.Get("/:id", h.GetProduct)
	router.Put("/:id", h.SaveProduct)
	router.Delete("/:id", confirm, h.DeleteProduct)
	router.Delete("/:id/images/:index", confirm, h.DeleteImage)

	edit := router.Group("/:id/edit")
	edit.Post("/", h.StartEdit)
	edit.Delete("/", h.CancelEdit)
	edit.Post("/photos", h.StagePhotos)
	edit.Post("/photos/reorder", h.ReorderPhotos)
	edit.Post("/photos/:index/delete", h.MarkPhotoDeleted)
	edit.Post("/reset", h.ResetEdit)
}

// CreateProduct accepts a multipart form with scalar fields and photos.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	in := models.ProductInput{
		Name:        c.FormValue("name"),
		Size:        c.FormValue("size"),
		Description: c.FormValue("description"),
	}
	if in.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	for key, dst := range map[string]*int64{"price": &in.Price, "quantityInBox": &in.QuantityInBox, "stock": &in.Stock} {
		v, err := formInt(c, key)
		if err != nil {
			return err
		}
		if v != nil {
			*dst = *v
		}
	}

	photos, err := readUploads(c, "photos")
	if err != nil {
		return err
	}
	in.Photos = photos

	if err := h.products.Create(c.UserContext(), in); err != nil {
		return err
	}
	h.dashboard.Invalidate()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    h.products.View(utils.ParsePagination(c)),
	})
}

// DeleteProduct soft-deletes a product.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.products.Delete(c.UserContext(), id); err != nil {
		return err
	}
	h.details.Close(id)
	h.deleted.Invalidate()
	h.dashboard.Invalidate()
	return ok(c, h.products.View(utils.ParsePagination(c)))
}

// RestoreProduct restores a soft-deleted product.
func (h *ProductHandler) RestoreProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.deleted.Restore(c.UserContext(), id); err != nil {
		return err
	}
	h.details.Close(id)
	h.products.Invalidate()
	h.dashboard.Invalidate()
	return ok(c, h.deleted.View(utils.ParsePagination(c)))
}

// GetProduct opens the product detail page. ?refresh=true refetches.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	page, err := h.details.Open(c.UserContext(), c.Params("id"), c.QueryBool("refresh"))
	if err != nil {
		return err
	}
	return ok(c, page.View())
}

func (h *ProductHandler) detail(c *fiber.Ctx) (*pages.ProductDetail, error) {
	return h.details.Open(c.UserContext(), c.Params("id"), false)
}

func (h *ProductHandler) withDetail(fn func(c *fiber.Ctx, page *pages.ProductDetail) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := h.detail(c)
		if err != nil {
			return err
		}
		if err := fn(c, page); err != nil {
			return err
		}
		return ok(c, page.View())
	}
}

// StartEdit enters edit mode.
func (h *ProductHandler) StartEdit(c *fiber.Ctx) error {
	return h.withDetail(func(_ *fiber.Ctx, page *pages.ProductDetail) error {
		return page.StartEdit()
	})(c)
}

// CancelEdit leaves edit mode and releases previews.
func (h *ProductHandler) CancelEdit(c *fiber.Ctx) error {
	return h.withDetail(func(_ *fiber.Ctx, page *pages.ProductDetail) error {
		page.Cancel()
		return nil
	})(c)
}

// StagePhotos replaces the staged photos with the posted files.
func (h *ProductHandler) StagePhotos(c *fiber.Ctx) error {
	return h.withDetail(func(c *fiber.Ctx, page *pages.ProductDetail) error {
		photos, err := readUploads(c, "photos")
		if err != nil {
			return err
		}
		return page.Stage(photos)
	})(c)
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ReorderPhotos moves an existing photo.
func (h *ProductHandler) ReorderPhotos(c *fiber.Ctx) error {
	return h.withDetail(func(c *fiber.Ctx, page *pages.ProductDetail) error {
		var req reorderRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		return page.Reorder(req.From, req.To)
	})(c)
}

// MarkPhotoDeleted soft-removes an existing photo.
func (h *ProductHandler) MarkPhotoDeleted(c *fiber.Ctx) error {
	return h.withDetail(func(c *fiber.Ctx, page *pages.ProductDetail) error {
		index, err := c.ParamsInt("index")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid index")
		}
		return page.MarkDeleted(index)
	})(c)
}

// ResetEdit restores the saved photo list.
func (h *ProductHandler) ResetEdit(c *fiber.Ctx) error {
	return h.withDetail(func(_ *fiber.Ctx, page *pages.ProductDetail) error {
		return page.ResetEdits()
	})(c)
}

// SaveProduct sends changed fields and the edited photo set. Files posted
// with the save are used only when no edit session is open.
func (h *ProductHandler) SaveProduct(c *fiber.Ctx) error {
	return h.withDetail(func(c *fiber.Ctx, page *pages.ProductDetail) error {
		up := models.ProductUpdate{
			Name:        formString(c, "name"),
			Size:        formString(c, "size"),
			Description: formString(c, "description"),
		}
		var err error
		if up.Price, err = formInt(c, "price"); err != nil {
			return err
		}
		if up.QuantityInBox, err = formInt(c, "quantityInBox"); err != nil {
			return err
		}
		if up.Stock, err = formInt(c, "stock"); err != nil {
			return err
		}
		if up.Photos, err = readUploads(c, "photos"); err != nil {
			return err
		}
		if err := page.Save(c.UserContext(), up); err != nil {
			return err
		}
		h.products.Invalidate()
		h.dashboard.Invalidate()
		return nil
	})(c)
}

// DeleteImage removes one saved image on the server.
func (h *ProductHandler) DeleteImage(c *fiber.Ctx) error {
	return h.withDetail(func(c *fiber.Ctx, page *pages.ProductDetail) error {
		index, err := c.ParamsInt("index")
		if err != nil || index < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid index")
		}
		if err := page.DeleteImage(c.UserContext(), index); err != nil {
			return err
		}
		h.products.Invalidate()
		return nil
	})(c)
}
