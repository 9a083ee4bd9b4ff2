package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/images"
)

// PreviewHandler serves staged uploads by their preview handle.
type PreviewHandler struct {
	previews *images.Previews
}

// NewPreviewHandler constructs a PreviewHandler.
func NewPreviewHandler(previews *images.Previews) *PreviewHandler {
	return &PreviewHandler{previews: previews}
}

// GetPreview writes the staged file behind :handle.
func (h *PreviewHandler) GetPreview(c *fiber.Ctx) error {
	upload, found := h.previews.Get(c.Params("handle"))
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "preview not found")
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(upload.Data)
}
