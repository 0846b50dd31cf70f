package api

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"frictionless/internal/config"
	"frictionless/internal/db"
	"frictionless/internal/email"
	"frictionless/internal/models"
)

// ShareHandler manages an organization's share links.
type ShareHandler struct {
	db       *db.DB
	cfg      *config.Config
	notifier *email.Notifier
}

// NewShareHandler creates a new share handler.
func NewShareHandler(database *db.DB, cfg *config.Config, notifier *email.Notifier) *ShareHandler {
	return &ShareHandler{db: database, cfg: cfg, notifier: notifier}
}

type createShareRequest struct {
	ShareType      string `json:"share_type"`
	RecipientEmail string `json:"recipient_email"`
	Watermark      string `json:"watermark"`
}

// Create handles POST /api/shares. Optionally emails the link to a
// recipient; a failed notification never fails the share.
func (h *ShareHandler) Create(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	var req createShareRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.ShareType != models.ShareProfile && req.ShareType != models.ShareReadiness {
		return jsonError(c, fiber.StatusBadRequest, "share_type must be profile or readiness")
	}

	share := &models.ShareLink{
		OrganizationID: *user.OrganizationID,
		ShareType:      req.ShareType,
		CreatedBy:      &user.ID,
	}
	if wm := strings.TrimSpace(req.Watermark); wm != "" {
		share.Watermark = &wm
	}

	lifetime := time.Duration(h.cfg.ShareExpiryDays) * 24 * time.Hour
	if err := h.db.CreateShareLink(c.Context(), share, lifetime); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create share link")
	}

	if err := h.db.LogActivity(c.Context(), &models.ActivityEvent{
		OrganizationID: share.OrganizationID,
		EventType:      models.EventShareCreated,
		ActorUserID:    &user.ID,
		ResourceType:   "share_link",
		ResourceID:     share.ID.String(),
		Metadata:       map[string]any{"share_type": share.ShareType},
	}); err != nil {
		slog.Error("failed to log share creation", "share_id", share.ID, "error", err)
	}

	shareURL := h.cfg.BaseURL + "/s/" + share.Token

	if h.notifier != nil && req.RecipientEmail != "" {
		org, err := h.db.GetOrganizationByID(c.Context(), share.OrganizationID)
		if err == nil {
			h.notifier.NotifyShareCreated(req.RecipientEmail, org, user, shareURL)
		}
	}

	return jsonSuccess(c, models.ShareResponse{Share: *share, URL: shareURL})
}

// List handles GET /api/shares.
func (h *ShareHandler) List(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	shares, err := h.db.ListShareLinks(c.Context(), *user.OrganizationID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load share links")
	}

	responses := make([]models.ShareResponse, 0, len(shares))
	for _, s := range shares {
		responses = append(responses, models.ShareResponse{
			Share: s,
			URL:   h.cfg.BaseURL + "/s/" + s.Token,
		})
	}
	return jsonSuccess(c, responses)
}

// Revoke handles DELETE /api/shares/:id. Revocation is scoped to the user's
// organization so a link can never be revoked across tenants.
func (h *ShareHandler) Revoke(c fiber.Ctx) error {
	user, ok := requireOrgUser(c)
	if !ok {
		return nil
	}

	shareID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid share id")
	}

	share, err := h.db.GetShareLinkByID(c.Context(), shareID, *user.OrganizationID)
	if errors.Is(err, db.ErrShareLinkNotFound) {
		return jsonError(c, fiber.StatusNotFound, "share link not found")
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load share link")
	}

	// Members may revoke their own links; anyone else's require admin.
	if !user.IsAdmin() && (share.CreatedBy == nil || *share.CreatedBy != user.ID) {
		return jsonError(c, fiber.StatusForbidden, "only the creator or an admin can revoke this link")
	}

	if err := h.db.RevokeShareLink(c.Context(), shareID, *user.OrganizationID); err != nil {
		if errors.Is(err, db.ErrShareLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "share link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to revoke share link")
	}

	if err := h.db.LogActivity(c.Context(), &models.ActivityEvent{
		OrganizationID: *user.OrganizationID,
		EventType:      models.EventShareRevoked,
		ActorUserID:    &user.ID,
		ResourceType:   "share_link",
		ResourceID:     shareID.String(),
	}); err != nil {
		slog.Error("failed to log share revocation", "share_id", shareID, "error", err)
	}

	return jsonSuccess(c, nil)
}
