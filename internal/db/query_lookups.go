package db

import (
	"context"

	"frictionless/internal/models"
)

// IncrementQueryLookup upserts a query lookup count by outcome.
func (d *DB) IncrementQueryLookup(ctx context.Context, target, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO query_lookups (target, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (target, outcome) DO UPDATE
		SET count = query_lookups.count + 1, last_seen_at = NOW()
	`, target, outcome)
	return err
}

// GetAllQueryLookups returns all query lookup rows for metrics export.
func (d *DB) GetAllQueryLookups(ctx context.Context) ([]models.QueryLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT target, outcome, count, last_seen_at FROM query_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.QueryLookup
	for rows.Next() {
		var l models.QueryLookup
		if err := rows.Scan(&l.Target, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
