package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"frictionless/internal/models"
)

// UpsertReadinessSummary stores the latest computed summary for an
// organization, one row per org.
func (d *DB) UpsertReadinessSummary(ctx context.Context, summary *models.ReadinessSummary) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO readiness_summaries (organization_id, overall, categories, computed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (organization_id) DO UPDATE
		SET overall = EXCLUDED.overall,
			categories = EXCLUDED.categories,
			computed_at = EXCLUDED.computed_at
	`, summary.OrganizationID, summary.Overall, summary.Categories, summary.ComputedAt)
	return err
}

// GetReadinessSummary returns the stored summary for an organization.
func (d *DB) GetReadinessSummary(ctx context.Context, orgID uuid.UUID) (*models.ReadinessSummary, error) {
	var summary models.ReadinessSummary
	err := d.Pool.QueryRow(ctx, `
		SELECT organization_id, overall, categories, computed_at
		FROM readiness_summaries
		WHERE organization_id = $1
	`, orgID).Scan(&summary.OrganizationID, &summary.Overall, &summary.Categories, &summary.ComputedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSummaryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetOrgsNeedingReadinessRefresh returns organizations whose tasks changed
// after their summary was computed, or that have no summary yet.
func (d *DB) GetOrgsNeedingReadinessRefresh(ctx context.Context, limit int) ([]uuid.UUID, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT o.id
		FROM organizations o
		LEFT JOIN readiness_summaries rs ON rs.organization_id = o.id
		WHERE EXISTS (
			SELECT 1 FROM tasks t
			WHERE t.organization_id = o.id
				AND (rs.computed_at IS NULL OR t.updated_at > rs.computed_at)
		)
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
