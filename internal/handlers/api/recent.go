package api

import (
	"github.com/gofiber/fiber/v3"

	"frictionless/internal/recent"
)

// RecentHandler serves the per-user recently visited pages list.
type RecentHandler struct {
	recent *recent.Store
}

// NewRecentHandler creates a new recent pages handler.
func NewRecentHandler(recentStore *recent.Store) *RecentHandler {
	return &RecentHandler{recent: recentStore}
}

// List handles GET /api/recent.
func (h *RecentHandler) List(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	entries, err := h.recent.List(user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load recent pages")
	}
	if entries == nil {
		entries = []recent.Entry{}
	}
	return jsonSuccess(c, entries)
}

// Clear handles DELETE /api/recent.
func (h *RecentHandler) Clear(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	if err := h.recent.Clear(user.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear recent pages")
	}
	return jsonSuccess(c, nil)
}
