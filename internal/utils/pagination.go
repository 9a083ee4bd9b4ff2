package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const defaultLimit = 20

// Pagination holds pagination parameters. Limit 0 means "everything".
type Pagination struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// ParsePagination reads page and limit query params with sane defaults.
func ParsePagination(c *fiber.Ctx) Pagination {
	return NewPagination(
		parseInt(c.Query("page", "1"), 1),
		parseInt(c.Query("limit", strconv.Itoa(defaultLimit)), defaultLimit),
	)
}

// NewPagination normalises page and limit.
func NewPagination(page, limit int) Pagination {
	if limit < 0 {
		limit = defaultLimit
	}
	if page <= 0 {
		page = 1
	}
	if limit == 0 {
		page = 1
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Paginate returns the window of items selected by pg.
func Paginate[T any](items []T, pg Pagination) []T {
	if pg.Limit == 0 {
		return items
	}
	if pg.Offset >= len(items) {
		return []T{}
	}
	end := pg.Offset + pg.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[pg.Offset:end]
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
