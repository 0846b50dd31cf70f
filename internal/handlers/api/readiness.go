package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"frictionless/internal/db"
	"frictionless/internal/readiness"
)

// ReadinessHandler serves the organization's investment readiness summary.
type ReadinessHandler struct {
	db *db.DB
}

// NewReadinessHandler creates a new readiness handler.
func NewReadinessHandler(database *db.DB) *ReadinessHandler {
	return &ReadinessHandler{db: database}
}

// Summary handles GET /api/readiness. Falls back to computing the summary
// inline when the background refresher hasn't produced one yet.
func (h *ReadinessHandler) Summary(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}
	orgID := *user.OrganizationID

	summary, err := h.db.GetReadinessSummary(c.Context(), orgID)
	if errors.Is(err, db.ErrSummaryNotFound) {
		tasks, terr := h.db.ListOrgTasks(c.Context(), orgID)
		if terr != nil {
			return jsonError(c, fiber.StatusInternalServerError, "failed to load tasks")
		}
		computed := readiness.Compute(orgID, tasks, time.Now())
		summary = &computed
		err = nil
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load readiness summary")
	}
	return jsonSuccess(c, summary)
}
