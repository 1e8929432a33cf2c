package tenant

import (
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// MembershipStatus represents the lifecycle state of a membership.
type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "ACTIVE"
	MembershipInactive MembershipStatus = "INACTIVE"
)

// IsValid checks if the membership status is valid.
func (s MembershipStatus) IsValid() bool {
	return s == MembershipActive || s == MembershipInactive
}

// String returns the string representation of the status.
func (s MembershipStatus) String() string {
	return string(s)
}

// Membership represents a user's membership in an agency.
type Membership struct {
	id        shared.ID
	agencyID  shared.ID
	userID    shared.ID
	role      Role
	status    MembershipStatus
	invitedBy *shared.ID // nil for the founder
	joinedAt  time.Time
}

// NewMembership creates a new agency Membership.
func NewMembership(agencyID, userID shared.ID, role Role, invitedBy *shared.ID) (*Membership, error) {
	if agencyID.IsZero() {
		return nil, fmt.Errorf("%w: agencyID is required", shared.ErrValidation)
	}
	if userID.IsZero() {
		return nil, fmt.Errorf("%w: userID is required", shared.ErrValidation)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role", shared.ErrValidation)
	}

	return &Membership{
		id:        shared.NewID(),
		agencyID:  agencyID,
		userID:    userID,
		role:      role,
		status:    MembershipActive,
		invitedBy: invitedBy,
		joinedAt:  time.Now().UTC(),
	}, nil
}

// NewOwnerMembership creates the founding membership for an agency owner.
func NewOwnerMembership(agencyID, userID shared.ID) (*Membership, error) {
	return NewMembership(agencyID, userID, RoleOwner, nil)
}

// ReconstituteMembership recreates a Membership from persistence.
func ReconstituteMembership(
	id shared.ID,
	agencyID, userID shared.ID,
	role Role,
	status MembershipStatus,
	invitedBy *shared.ID,
	joinedAt time.Time,
) *Membership {
	return &Membership{
		id:        id,
		agencyID:  agencyID,
		userID:    userID,
		role:      role,
		status:    status,
		invitedBy: invitedBy,
		joinedAt:  joinedAt,
	}
}

// ID returns the membership ID.
func (m *Membership) ID() shared.ID {
	return m.id
}

// AgencyID returns the agency ID.
func (m *Membership) AgencyID() shared.ID {
	return m.agencyID
}

// UserID returns the member's user ID.
func (m *Membership) UserID() shared.ID {
	return m.userID
}

// Role returns the member's role.
func (m *Membership) Role() Role {
	return m.role
}

// Status returns the membership status.
func (m *Membership) Status() MembershipStatus {
	return m.status
}

// InvitedBy returns the user ID who invited this member (nil for the founder).
func (m *Membership) InvitedBy() *shared.ID {
	return m.invitedBy
}

// JoinedAt returns when the member joined.
func (m *Membership) JoinedAt() time.Time {
	return m.joinedAt
}

// IsActive checks if the membership is active.
func (m *Membership) IsActive() bool {
	return m.status == MembershipActive
}

// IsOwner checks if this membership has the owner role.
func (m *Membership) IsOwner() bool {
	return m.role == RoleOwner
}

// ProjectMembership represents a user's membership in a single project,
// granting access without agency-wide rights.
type ProjectMembership struct {
	id        shared.ID
	projectID shared.ID
	userID    shared.ID
	role      Role
	status    MembershipStatus
	invitedBy *shared.ID
	invitedAt time.Time
}

// NewProjectMembership creates a new ProjectMembership.
func NewProjectMembership(projectID, userID shared.ID, role Role, invitedBy *shared.ID) (*ProjectMembership, error) {
	if projectID.IsZero() {
		return nil, fmt.Errorf("%w: projectID is required", shared.ErrValidation)
	}
	if userID.IsZero() {
		return nil, fmt.Errorf("%w: userID is required", shared.ErrValidation)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role", shared.ErrValidation)
	}

	return &ProjectMembership{
		id:        shared.NewID(),
		projectID: projectID,
		userID:    userID,
		role:      role,
		status:    MembershipActive,
		invitedBy: invitedBy,
		invitedAt: time.Now().UTC(),
	}, nil
}

// ReconstituteProjectMembership recreates a ProjectMembership from persistence.
func ReconstituteProjectMembership(
	id shared.ID,
	projectID, userID shared.ID,
	role Role,
	status MembershipStatus,
	invitedBy *shared.ID,
	invitedAt time.Time,
) *ProjectMembership {
	return &ProjectMembership{
		id:        id,
		projectID: projectID,
		userID:    userID,
		role:      role,
		status:    status,
		invitedBy: invitedBy,
		invitedAt: invitedAt,
	}
}

// ID returns the project membership ID.
func (m *ProjectMembership) ID() shared.ID {
	return m.id
}

// ProjectID returns the project ID.
func (m *ProjectMembership) ProjectID() shared.ID {
	return m.projectID
}

// UserID returns the member's user ID.
func (m *ProjectMembership) UserID() shared.ID {
	return m.userID
}

// Role returns the member's role within the project.
func (m *ProjectMembership) Role() Role {
	return m.role
}

// Status returns the membership status.
func (m *ProjectMembership) Status() MembershipStatus {
	return m.status
}

// InvitedBy returns the user ID who invited this member.
func (m *ProjectMembership) InvitedBy() *shared.ID {
	return m.invitedBy
}

// InvitedAt returns when the member was invited.
func (m *ProjectMembership) InvitedAt() time.Time {
	return m.invitedAt
}

// IsActive checks if the project membership is active.
func (m *ProjectMembership) IsActive() bool {
	return m.status == MembershipActive
}
