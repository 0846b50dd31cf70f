package db

import (
	"context"

	"github.com/google/uuid"

	"frictionless/internal/models"
)

// LogActivity appends one event to an organization's activity feed.
func (d *DB) LogActivity(ctx context.Context, event *models.ActivityEvent) error {
	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return d.Pool.QueryRow(ctx, `
		INSERT INTO activity_events (organization_id, event_type, actor_user_id, resource_type, resource_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		event.OrganizationID,
		event.EventType,
		event.ActorUserID,
		event.ResourceType,
		event.ResourceID,
		metadata,
	).Scan(&event.ID, &event.CreatedAt)
}

// ActivityFilter narrows an activity feed query. Zero values mean "no filter".
type ActivityFilter struct {
	EventType    string
	ResourceType string
	Limit        int
}

// GetActivityEvents returns an organization's activity feed, newest first.
func (d *DB) GetActivityEvents(ctx context.Context, orgID uuid.UUID, filter ActivityFilter) ([]models.ActivityEvent, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT id, organization_id, event_type, actor_user_id, resource_type, resource_id, metadata, created_at
		FROM activity_events
		WHERE organization_id = $1
			AND ($2 = '' OR event_type = $2)
			AND ($3 = '' OR resource_type = $3)
		ORDER BY created_at DESC
		LIMIT $4
	`, orgID, filter.EventType, filter.ResourceType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.ActivityEvent
	for rows.Next() {
		var event models.ActivityEvent
		if err := rows.Scan(
			&event.ID,
			&event.OrganizationID,
			&event.EventType,
			&event.ActorUserID,
			&event.ResourceType,
			&event.ResourceID,
			&event.Metadata,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
