package db

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"frictionless/internal/models"
)

const shareColumns = `id, token, organization_id, share_type, created_by, watermark,
	view_count, expires_at, last_viewed_at, created_at`

func scanShareLink(row pgx.Row) (*models.ShareLink, error) {
	var share models.ShareLink
	err := row.Scan(
		&share.ID,
		&share.Token,
		&share.OrganizationID,
		&share.ShareType,
		&share.CreatedBy,
		&share.Watermark,
		&share.ViewCount,
		&share.ExpiresAt,
		&share.LastViewedAt,
		&share.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShareLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// CreateShareLink creates a tokenized share link with the given lifetime.
func (d *DB) CreateShareLink(ctx context.Context, share *models.ShareLink, lifetime time.Duration) error {
	share.Token = generateShareToken()
	share.ExpiresAt = time.Now().Add(lifetime)

	return d.Pool.QueryRow(ctx, `
		INSERT INTO share_links (token, organization_id, share_type, created_by, watermark, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, view_count, created_at
	`,
		share.Token,
		share.OrganizationID,
		share.ShareType,
		share.CreatedBy,
		share.Watermark,
		share.ExpiresAt,
	).Scan(&share.ID, &share.ViewCount, &share.CreatedAt)
}

// ValidateShareLink resolves a token to its share link, rejecting expired
// links, and records the view.
func (d *DB) ValidateShareLink(ctx context.Context, token string) (*models.ShareLink, error) {
	row := d.Pool.QueryRow(ctx, `SELECT `+shareColumns+` FROM share_links WHERE token = $1`, token)
	share, err := scanShareLink(row)
	if err != nil {
		return nil, err
	}

	if share.IsExpired(time.Now()) {
		return nil, ErrShareLinkExpired
	}

	_, err = d.Pool.Exec(ctx, `
		UPDATE share_links SET view_count = view_count + 1, last_viewed_at = NOW() WHERE id = $1
	`, share.ID)
	if err != nil {
		return nil, err
	}
	share.ViewCount++

	return share, nil
}

// GetShareLinkByID retrieves a share link by ID, scoped to an organization.
func (d *DB) GetShareLinkByID(ctx context.Context, id, orgID uuid.UUID) (*models.ShareLink, error) {
	row := d.Pool.QueryRow(ctx, `
		SELECT `+shareColumns+` FROM share_links WHERE id = $1 AND organization_id = $2
	`, id, orgID)
	return scanShareLink(row)
}

// ListShareLinks returns an organization's share links, newest first.
func (d *DB) ListShareLinks(ctx context.Context, orgID uuid.UUID) ([]models.ShareLink, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+shareColumns+` FROM share_links WHERE organization_id = $1 ORDER BY created_at DESC
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []models.ShareLink
	for rows.Next() {
		var share models.ShareLink
		if err := rows.Scan(
			&share.ID,
			&share.Token,
			&share.OrganizationID,
			&share.ShareType,
			&share.CreatedBy,
			&share.Watermark,
			&share.ViewCount,
			&share.ExpiresAt,
			&share.LastViewedAt,
			&share.CreatedAt,
		); err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, rows.Err()
}

// RevokeShareLink deletes a share link. Scoped to the organization so one
// org can never revoke another's links.
func (d *DB) RevokeShareLink(ctx context.Context, id, orgID uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `
		DELETE FROM share_links WHERE id = $1 AND organization_id = $2
	`, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrShareLinkNotFound
	}
	return nil
}

// generateShareToken returns a 32-byte URL-safe random token.
func generateShareToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
