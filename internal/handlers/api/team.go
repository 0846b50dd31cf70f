package api

import (
	"github.com/gofiber/fiber/v3"

	"frictionless/internal/db"
)

// TeamHandler serves the organization's member list.
type TeamHandler struct {
	db *db.DB
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(database *db.DB) *TeamHandler {
	return &TeamHandler{db: database}
}

// List handles GET /api/team, returning the members of the user's
// organization in join order.
func (h *TeamHandler) List(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	members, err := h.db.ListOrgUsers(c.Context(), *user.OrganizationID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load team")
	}
	return jsonSuccess(c, members)
}
