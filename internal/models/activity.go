package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity event type constants. The set is open: callers may log new event
// types without a schema change.
const (
	EventTaskCompleted = "task_completed"
	EventShareCreated  = "share_created"
	EventShareRevoked  = "share_revoked"
	EventShareViewed   = "share_viewed"
	EventChatMessage   = "chat_message"
)

// ActivityEvent is one append-only entry in an organization's activity feed.
type ActivityEvent struct {
	ID             uuid.UUID      `json:"id"`
	OrganizationID uuid.UUID      `json:"organization_id"`
	EventType      string         `json:"event_type"`
	ActorUserID    *uuid.UUID     `json:"actor_user_id,omitempty"`
	ResourceType   string         `json:"resource_type"`
	ResourceID     string         `json:"resource_id"`
	Metadata       map[string]any `json:"metadata"`
	CreatedAt      time.Time      `json:"created_at"`
}
