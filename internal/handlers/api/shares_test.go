package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"frictionless/internal/config"
	"frictionless/internal/db"
	"frictionless/internal/models"
	"frictionless/internal/testutil"
)

// shareTestApp builds a Fiber app with the revoke route acting as the given
// user.
func shareTestApp(database *db.DB, user *models.User) *fiber.App {
	cfg := &config.Config{BaseURL: "http://localhost:3000", ShareExpiryDays: 30}

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals("user", user)
		return c.Next()
	})

	handler := NewShareHandler(database, cfg, nil)
	app.Delete("/api/shares/:id", handler.Revoke)
	return app
}

func createShare(t *testing.T, database *db.DB, orgID, createdBy uuid.UUID) *models.ShareLink {
	t.Helper()
	share := &models.ShareLink{
		OrganizationID: orgID,
		ShareType:      models.ShareProfile,
		CreatedBy:      &createdBy,
	}
	if err := database.CreateShareLink(context.Background(), share, 24*time.Hour); err != nil {
		t.Fatalf("CreateShareLink() error = %v", err)
	}
	return share
}

func revoke(t *testing.T, app *fiber.App, shareID uuid.UUID) int {
	t.Helper()
	req, _ := http.NewRequest("DELETE", "/api/shares/"+shareID.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp.StatusCode
}

func TestRevokeShareLinkPermissions(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	orgID := testutil.CreateTestOrg(t, database, "Revoke Perm Org", "revoke-perm-org")
	creatorID := testutil.CreateTestUser(t, database, "perm-creator", "creator@example.com", "member", orgID)
	memberID := testutil.CreateTestUser(t, database, "perm-member", "member@example.com", "member", orgID)
	adminID := testutil.CreateTestUser(t, database, "perm-admin", "admin@example.com", "admin", orgID)

	creator := &models.User{ID: creatorID, Role: models.RoleMember, OrganizationID: &orgID}
	member := &models.User{ID: memberID, Role: models.RoleMember, OrganizationID: &orgID}
	admin := &models.User{ID: adminID, Role: models.RoleAdmin, OrganizationID: &orgID}

	// A member cannot revoke someone else's link.
	share := createShare(t, database, orgID, creatorID)
	if code := revoke(t, shareTestApp(database, member), share.ID); code != http.StatusForbidden {
		t.Errorf("member revoking another's link: expected 403, got %d", code)
	}

	// The creator can revoke their own link.
	if code := revoke(t, shareTestApp(database, creator), share.ID); code != http.StatusOK {
		t.Errorf("creator revoking own link: expected 200, got %d", code)
	}

	// An admin can revoke anyone's link.
	share = createShare(t, database, orgID, creatorID)
	if code := revoke(t, shareTestApp(database, admin), share.ID); code != http.StatusOK {
		t.Errorf("admin revoking member's link: expected 200, got %d", code)
	}

	// Revoking an unknown link is a 404 regardless of role.
	if code := revoke(t, shareTestApp(database, admin), uuid.New()); code != http.StatusNotFound {
		t.Errorf("revoking unknown link: expected 404, got %d", code)
	}
}
