package api

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"frictionless/internal/db"
)

// ActivityHandler serves the organization activity feed.
type ActivityHandler struct {
	db *db.DB
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(database *db.DB) *ActivityHandler {
	return &ActivityHandler{db: database}
}

// List handles GET /api/activity. Supports optional event_type,
// resource_type and limit query parameters, newest first.
func (h *ActivityHandler) List(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	filter := db.ActivityFilter{
		EventType:    c.Query("event_type"),
		ResourceType: c.Query("resource_type"),
		Limit:        limit,
	}

	events, err := h.db.GetActivityEvents(c.Context(), *user.OrganizationID, filter)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load activity")
	}
	return jsonSuccess(c, events)
}
