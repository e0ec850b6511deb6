// Package model contains domain models passed between layers.
// Wire shapes mirror the platform REST API; all authoritative state is
// server-owned and the client only holds ephemeral copies.
package model

// Role tags a session as belonging to a talent or an organizer.
type Role string

// Known roles. RoleNone marks the absence of a session.
const (
	RoleTalent    Role = "talent"
	RoleOrganizer Role = "organizer"
	RoleNone      Role = ""
)

// Valid reports whether the role is one of the two platform roles.
func (r Role) Valid() bool {
	return r == RoleTalent || r == RoleOrganizer
}

// Session is the client-side authentication state. Role is meaningful only
// while Token is non-empty; both are always replaced together.
type Session struct {
	Token       string `json:"token"`
	Role        Role   `json:"role"`
	OrganizerID int    `json:"organizer_id,omitempty"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Page is the paginated list envelope the backend wraps collections in.
// Some endpoints return bare arrays instead; the gateway normalizes both
// shapes before they reach a view.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
