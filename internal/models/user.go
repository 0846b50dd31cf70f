package models

import (
	"time"

	"github.com/google/uuid"
)

// Role constants
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
)

// User represents a user authenticated via OIDC.
type User struct {
	ID             uuid.UUID  `json:"id"`
	Sub            string     `json:"sub"` // OIDC subject identifier
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Picture        string     `json:"picture"`
	Role           string     `json:"role"` // member, admin, owner
	OrganizationID *uuid.UUID `json:"organization_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsAdmin returns true if the user can administer their organization.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleOwner
}

// BelongsTo returns true if the user is a member of the given organization.
func (u *User) BelongsTo(orgID uuid.UUID) bool {
	return u.OrganizationID != nil && *u.OrganizationID == orgID
}
