package domain

import (
	"net/url"
	"time"
)

// User represents a team member shown on the company settings page.
// The ID is assigned by the store and is opaque to clients.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// User roles.
const (
	RoleAdmin       = "Admin"
	RoleSalesLeader = "Sales Leader"
	RoleSalesRep    = "Sales Rep"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []string{RoleAdmin, RoleSalesLeader, RoleSalesRep}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User statuses. A user starts out invited and becomes active once they
// accept the invite.
const (
	StatusActive  = "active"
	StatusInvited = "invited"
)

// UserPatch is the set of fields that may change after creation.
// Email and avatar are immutable once a user exists; nil fields are
// left untouched by an update.
type UserPatch struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil
}

// Apply merges the patch over u, field by field.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

// UserForm carries the fields a user fills in before a create or update
// is submitted. Avatar may be left blank, in which case a default is
// derived from the name.
type UserForm struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// DefaultAvatarURL derives a placeholder avatar for users created without
// one. The URL is a deterministic function of the name so the same user
// always gets the same image.
func DefaultAvatarURL(name string) string {
	return "https://robohash.org/" + url.PathEscape(name) + ".png?size=200x200"
}
