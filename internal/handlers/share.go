package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"frictionless/internal/config"
	"frictionless/internal/db"
	"frictionless/internal/models"
	"frictionless/internal/readiness"
	"frictionless/internal/validation"
)

// ShareHandler renders the public read-only view behind a share link.
type ShareHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewShareHandler creates a new share handler.
func NewShareHandler(database *db.DB, cfg *config.Config) *ShareHandler {
	return &ShareHandler{db: database, cfg: cfg}
}

// View handles GET /s/:token. It validates the token, increments the view
// count, and renders the shared profile or readiness report.
func (h *ShareHandler) View(c fiber.Ctx) error {
	token := c.Params("token")
	if !validation.ValidateShareToken(token) {
		return fiber.NewError(fiber.StatusNotFound, "share link not found")
	}

	share, err := h.db.ValidateShareLink(c.Context(), token)
	if err != nil {
		if errors.Is(err, db.ErrShareLinkExpired) {
			return fiber.NewError(fiber.StatusGone, "this share link has expired")
		}
		if errors.Is(err, db.ErrShareLinkNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "share link not found")
		}
		return err
	}

	org, err := h.db.GetOrganizationByID(c.Context(), share.OrganizationID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "share link not found")
	}

	data := fiber.Map{
		"Title":       org.Name,
		"SiteTitle":   h.cfg.SiteTitle,
		"SiteTagline": h.cfg.SiteTagline,
		"SiteFooter":  h.cfg.SiteFooter,
		"Org":         org,
		"ShareType":   share.ShareType,
		"Watermark":   share.Watermark,
	}

	if share.CreatedBy != nil {
		if creator, err := h.db.GetUserByID(c.Context(), *share.CreatedBy); err == nil && creator.Name != "" {
			data["SharedBy"] = creator.Name
		}
	}

	if share.ShareType == models.ShareReadiness {
		summary, err := h.db.GetReadinessSummary(c.Context(), org.ID)
		if errors.Is(err, db.ErrSummaryNotFound) {
			// Compute on the fly if the refresher hasn't run yet.
			tasks, terr := h.db.ListOrgTasks(c.Context(), org.ID)
			if terr != nil {
				return terr
			}
			computed := readiness.Compute(org.ID, tasks, time.Now())
			summary = &computed
			err = nil
		}
		if err != nil {
			return err
		}
		data["Summary"] = summary
	}

	// Viewing is worth surfacing in the owner's feed, but must never fail
	// the render.
	if err := h.db.LogActivity(c.Context(), &models.ActivityEvent{
		OrganizationID: share.OrganizationID,
		EventType:      models.EventShareViewed,
		ResourceType:   "share_link",
		ResourceID:     share.ID.String(),
		Metadata:       map[string]any{"share_type": share.ShareType},
	}); err != nil {
		slog.Error("failed to log share view", "share_id", share.ID, "error", err)
	}

	return c.Render("share", data)
}
