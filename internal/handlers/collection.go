package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/pages"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

// ListPage is a page whose derived list can be searched and sorted.
type ListPage[R any] interface {
	Load(ctx context.Context) error
	Ensure(ctx context.Context) error
	Search(term string)
	Sort(key string) view.Sort
	View(pg utils.Pagination) pages.ViewModel[R]
}

// Filterable is a ListPage with a discrete filter.
type Filterable interface {
	SetFilter(value string) error
}

type searchRequest struct {
	Term string `json:"term"`
}

type filterRequest struct {
	Value string `json:"value"`
}

// listRoutes serves the intents of a list page.
type listRoutes[R any] struct {
	page ListPage[R]
}

// registerList mounts GET /, POST /refresh, /search, /sort/:key and, when
// the page supports it, /filter.
func registerList[R any](router fiber.Router, page ListPage[R]) {
	h := listRoutes[R]{page: page}
	router.Get("/", h.list)
	router.Post("/refresh", h.refresh)
	router.Post("/search", h.search)
	router.Post("/sort/:key", h.sort)
	if _, ok := page.(Filterable); ok {
		router.Post("/filter", h.filter)
	}
}

// list returns the derived view, fetching on first use or with ?refresh=true.
// A failed fetch is reported inline in the view-model.
func (h listRoutes[R]) list(c *fiber.Ctx) error {
	var err error
	if c.QueryBool("refresh") {
		err = h.page.Load(c.UserContext())
	} else {
		err = h.page.Ensure(c.UserContext())
	}
	if err != nil && apperrors.IsUnauthorized(err) {
		return err
	}
	return ok(c, h.page.View(utils.ParsePagination(c)))
}

func (h listRoutes[R]) refresh(c *fiber.Ctx) error {
	if err := h.page.Load(c.UserContext()); err != nil && apperrors.IsUnauthorized(err) {
		return err
	}
	return ok(c, h.page.View(utils.ParsePagination(c)))
}

func (h listRoutes[R]) search(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	h.page.Search(req.Term)
	return ok(c, h.page.View(utils.ParsePagination(c)))
}

func (h listRoutes[R]) filter(c *fiber.Ctx) error {
	var req filterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.page.(Filterable).SetFilter(req.Value); err != nil {
		return err
	}
	return ok(c, h.page.View(utils.ParsePagination(c)))
}

func (h listRoutes[R]) sort(c *fiber.Ctx) error {
	h.page.Sort(c.Params("key"))
	return ok(c, h.page.View(utils.ParsePagination(c)))
}
