package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a startup workspace. All dashboard data (tasks,
// activity, shares, readiness) hangs off an organization.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Website   *string   `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
