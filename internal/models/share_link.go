package models

import (
	"time"

	"github.com/google/uuid"
)

// Share type constants
const (
	ShareProfile   = "profile"
	ShareReadiness = "readiness"
)

// ShareLink is a tokenized, expiring, read-only view of an organization's
// profile or readiness report.
type ShareLink struct {
	ID             uuid.UUID  `json:"id"`
	Token          string     `json:"token"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	ShareType      string     `json:"share_type"` // profile, readiness
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	Watermark      *string    `json:"watermark,omitempty"`
	ViewCount      int64      `json:"view_count"`
	ExpiresAt      time.Time  `json:"expires_at"`
	LastViewedAt   *time.Time `json:"last_viewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// IsExpired returns true if the share link is past its expiry.
func (s *ShareLink) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
