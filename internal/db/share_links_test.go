package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"frictionless/internal/db"
	"frictionless/internal/models"
	"frictionless/internal/testutil"
)

func TestCreateAndValidateShareLink(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	orgID := testutil.CreateTestOrg(t, database, "Share Test Org", "share-test-org")

	share := &models.ShareLink{
		OrganizationID: orgID,
		ShareType:      models.ShareProfile,
	}
	if err := database.CreateShareLink(ctx, share, 24*time.Hour); err != nil {
		t.Fatalf("CreateShareLink() error = %v", err)
	}
	if share.Token == "" {
		t.Fatal("expected a generated token")
	}

	validated, err := database.ValidateShareLink(ctx, share.Token)
	if err != nil {
		t.Fatalf("ValidateShareLink() error = %v", err)
	}
	if validated.ViewCount != 1 {
		t.Errorf("expected view count 1 after validation, got %d", validated.ViewCount)
	}

	// Each validation counts as a view.
	validated, err = database.ValidateShareLink(ctx, share.Token)
	if err != nil {
		t.Fatalf("ValidateShareLink() second call error = %v", err)
	}
	if validated.ViewCount != 2 {
		t.Errorf("expected view count 2, got %d", validated.ViewCount)
	}
}

func TestValidateShareLinkExpired(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	orgID := testutil.CreateTestOrg(t, database, "Expired Test Org", "expired-test-org")

	share := &models.ShareLink{
		OrganizationID: orgID,
		ShareType:      models.ShareReadiness,
	}
	if err := database.CreateShareLink(ctx, share, -time.Hour); err != nil {
		t.Fatalf("CreateShareLink() error = %v", err)
	}

	_, err := database.ValidateShareLink(ctx, share.Token)
	if !errors.Is(err, db.ErrShareLinkExpired) {
		t.Errorf("expected ErrShareLinkExpired, got %v", err)
	}
}

func TestValidateShareLinkNotFound(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	_, err := database.ValidateShareLink(context.Background(), "no-such-token-aaaaaaaa")
	if !errors.Is(err, db.ErrShareLinkNotFound) {
		t.Errorf("expected ErrShareLinkNotFound, got %v", err)
	}
}

func TestRevokeShareLinkScopedToOrg(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	orgID := testutil.CreateTestOrg(t, database, "Revoke Test Org", "revoke-test-org")
	otherOrgID := testutil.CreateTestOrg(t, database, "Other Org", "revoke-other-org")

	share := &models.ShareLink{
		OrganizationID: orgID,
		ShareType:      models.ShareProfile,
	}
	if err := database.CreateShareLink(ctx, share, 24*time.Hour); err != nil {
		t.Fatalf("CreateShareLink() error = %v", err)
	}

	// Another tenant must not be able to revoke the link.
	err := database.RevokeShareLink(ctx, share.ID, otherOrgID)
	if !errors.Is(err, db.ErrShareLinkNotFound) {
		t.Errorf("expected ErrShareLinkNotFound for cross-org revoke, got %v", err)
	}

	if err := database.RevokeShareLink(ctx, share.ID, orgID); err != nil {
		t.Fatalf("RevokeShareLink() error = %v", err)
	}

	if _, err := database.ValidateShareLink(ctx, share.Token); !errors.Is(err, db.ErrShareLinkNotFound) {
		t.Errorf("expected ErrShareLinkNotFound after revoke, got %v", err)
	}
}

func TestListShareLinks(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	orgID := testutil.CreateTestOrg(t, database, "List Test Org", "list-test-org")
	for _, shareType := range []string{models.ShareProfile, models.ShareReadiness} {
		share := &models.ShareLink{OrganizationID: orgID, ShareType: shareType}
		if err := database.CreateShareLink(ctx, share, 24*time.Hour); err != nil {
			t.Fatalf("CreateShareLink(%s) error = %v", shareType, err)
		}
	}

	shares, err := database.ListShareLinks(ctx, orgID)
	if err != nil {
		t.Fatalf("ListShareLinks() error = %v", err)
	}
	if len(shares) != 2 {
		t.Errorf("expected 2 share links, got %d", len(shares))
	}

	other, err := database.ListShareLinks(ctx, uuid.New())
	if err != nil {
		t.Fatalf("ListShareLinks() for unknown org error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no share links for unknown org, got %d", len(other))
	}
}
