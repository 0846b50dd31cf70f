package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"frictionless/internal/metrics"
	"frictionless/internal/models"
	"frictionless/internal/nav"
	"frictionless/internal/recent"
	"frictionless/internal/validation"
)

// QueryHandler runs free-text queries against the page registry.
type QueryHandler struct {
	registry nav.Registry
	recent   *recent.Store
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(registry nav.Registry, recentStore *recent.Store) *QueryHandler {
	return &QueryHandler{registry: registry, recent: recentStore}
}

type queryRequest struct {
	Query string `json:"query"`
}

// Query handles POST /api/query. Navigation phrasing with a match tells the
// client to navigate; other matches come back as a ranked list; no match
// tells the client to hand the text to the assistant instead.
func (h *QueryHandler) Query(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	var req queryRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if !validation.ValidateQuery(req.Query) {
		return jsonError(c, fiber.StatusBadRequest, "query too long")
	}

	results := nav.Search(req.Query, h.registry)

	target := validation.NormalizeTarget(req.Query)
	if extracted := nav.ExtractTarget(req.Query); extracted != "" {
		target = extracted
	}

	if nav.ClassifyIntent(req.Query) && len(results) > 0 {
		top := results[0]
		metrics.RecordQueryLookup(target, models.OutcomeNavigated)
		if err := h.recent.Touch(user.ID, top.Route, top.Label); err != nil {
			slog.Error("failed to record recent page", "user_id", user.ID, "error", err)
		}
		return jsonSuccess(c, models.QueryResponse{
			Action: models.ActionNavigate,
			Target: target,
			Route:  top.Route,
		})
	}

	if len(results) > 0 {
		metrics.RecordQueryLookup(target, models.OutcomeResults)
		return jsonSuccess(c, models.QueryResponse{
			Action:  models.ActionResults,
			Target:  target,
			Results: results,
		})
	}

	metrics.RecordQueryLookup(target, models.OutcomeFallback)
	resp := models.QueryResponse{
		Action: models.ActionAsk,
		Target: target,
	}
	if suggestion, ok := nav.Suggest(req.Query, h.registry); ok {
		resp.Suggestion = &suggestion
	}
	return jsonSuccess(c, resp)
}
