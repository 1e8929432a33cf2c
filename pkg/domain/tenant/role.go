package tenant

// Role represents a user's role within an agency or project.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleTeam   Role = "TEAM"
	RoleClient Role = "CLIENT"
)

// IsValid checks if the role is valid.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleTeam, RoleClient:
		return true
	}
	return false
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// CanInvite checks if this role can issue invitations.
func (r Role) CanInvite() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanManageMembers checks if this role can manage (update/remove) members.
func (r Role) CanManageMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanWrite checks if this role has write permissions on agency resources.
func (r Role) CanWrite() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleTeam
}

// CanRead checks if this role has read permissions.
func (r Role) CanRead() bool {
	return r.IsValid() // All valid roles can read
}

// Priority returns the priority of the role (higher = more permissions).
func (r Role) Priority() int {
	switch r {
	case RoleOwner:
		return 4
	case RoleAdmin:
		return 3
	case RoleTeam:
		return 2
	case RoleClient:
		return 1
	default:
		return 0
	}
}

// AllRoles returns every valid role.
func AllRoles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleTeam, RoleClient}
}

// ParseRole parses a string to a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
