package tenant

import (
	"context"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// Repository defines the interface for agency, membership, and invitation
// persistence.
type Repository interface {
	// Agency CRUD
	Create(ctx context.Context, a *Agency) error
	GetByID(ctx context.Context, id shared.ID) (*Agency, error)
	GetBySlug(ctx context.Context, slug string) (*Agency, error)
	Update(ctx context.Context, a *Agency) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// CreateAgencyTx atomically creates the agency, the founding OWNER
	// membership, and sets the founder's primary tenant context in a single
	// transaction. A duplicate slug leaves nothing persisted.
	CreateAgencyTx(ctx context.Context, a *Agency, owner *Membership) error

	// Membership operations
	CreateMembership(ctx context.Context, m *Membership) error
	GetMembership(ctx context.Context, agencyID, userID shared.ID) (*Membership, error)
	ListMembersByAgency(ctx context.Context, agencyID shared.ID) ([]*Membership, error)
	ListMembersWithUserInfo(ctx context.Context, agencyID shared.ID) ([]*MemberWithUser, error)
	CountMembersByAgency(ctx context.Context, agencyID shared.ID) (int64, error)

	// Project membership operations
	CreateProjectMembership(ctx context.Context, m *ProjectMembership) error
	GetProjectMembership(ctx context.Context, projectID, userID shared.ID) (*ProjectMembership, error)
	ListMembersByProject(ctx context.Context, projectID shared.ID) ([]*ProjectMembership, error)

	// Invitation operations
	CreateInvitation(ctx context.Context, inv *Invitation) error
	GetInvitationByID(ctx context.Context, id shared.ID) (*Invitation, error)
	// GetInvitationByTokenHash looks an invitation up by its keyed token
	// hash. A miss returns shared.ErrNotFound; callers fold it into
	// ErrInvalidToken.
	GetInvitationByTokenHash(ctx context.Context, tokenHash string) (*Invitation, error)
	ListPendingInvitationsByResource(ctx context.Context, scope Scope, resourceID shared.ID) ([]*Invitation, error)

	// AcceptInvitationTx atomically flips the invitation from PENDING to
	// ACCEPTED and applies the membership grant. The conditional status
	// update is the concurrency-control point: when it matches zero rows
	// another acceptance already won, the whole transaction rolls back, and
	// ErrInvitationNotPending is returned.
	AcceptInvitationTx(ctx context.Context, inv *Invitation, grant AcceptanceGrant) error
}

// AcceptanceGrant captures the state changes an accepted invitation applies.
// Exactly one of AgencyMembership or ProjectMembership is set, matching the
// invitation scope.
type AcceptanceGrant struct {
	AgencyMembership  *Membership
	ProjectMembership *ProjectMembership

	// Primary tenant context of the accepting user. Agency-scope
	// acceptances overwrite unconditionally; project-scope acceptances set
	// it only when the user has none.
	UserID           shared.ID
	PrimaryAgencyID  shared.ID
	PrimaryRole      Role
	OverwritePrimary bool
}

// MemberWithUser represents an agency membership joined with user details.
type MemberWithUser struct {
	ID        shared.ID
	UserID    shared.ID
	Role      Role
	Status    MembershipStatus
	InvitedBy *shared.ID
	JoinedAt  time.Time

	Email string
	Name  string
}
