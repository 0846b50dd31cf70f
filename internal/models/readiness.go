package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryScore is the completion score for one task category.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"` // 0-100, weight-adjusted completion
	Done     int    `json:"done"`
	Total    int    `json:"total"`
}

// ReadinessSummary aggregates task completion into an overall investment
// readiness score.
type ReadinessSummary struct {
	OrganizationID uuid.UUID       `json:"organization_id"`
	Overall        int             `json:"overall"` // 0-100
	Categories     []CategoryScore `json:"categories"`
	ComputedAt     time.Time       `json:"computed_at"`
}
