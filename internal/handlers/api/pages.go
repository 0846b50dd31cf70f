package api

import (
	"github.com/gofiber/fiber/v3"

	"frictionless/internal/nav"
)

// PagesHandler serves the page registry so clients can cache it.
type PagesHandler struct {
	registry nav.Registry
}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler(registry nav.Registry) *PagesHandler {
	return &PagesHandler{registry: registry}
}

// List handles GET /api/pages.
func (h *PagesHandler) List(c fiber.Ctx) error {
	if _, ok := requireOrgUser(c); !ok {
		return nil
	}
	return jsonSuccess(c, h.registry)
}
