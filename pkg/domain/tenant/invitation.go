package tenant

import (
	"fmt"
	"strings"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
)

// DefaultInvitationExpiry is the default expiry duration for invitations.
const DefaultInvitationExpiry = 7 * 24 * time.Hour // 7 days

// Invitation acceptance errors. Store misses and malformed tokens collapse
// into ErrInvalidToken so callers cannot probe which tokens exist.
var (
	ErrInvalidToken         = fmt.Errorf("%w: invalid invitation token", shared.ErrNotFound)
	ErrInvitationNotPending = fmt.Errorf("%w: invitation not pending", shared.ErrConflict)
	ErrInvitationExpired    = fmt.Errorf("%w: invitation expired", shared.ErrConflict)
	ErrEmailMismatch        = fmt.Errorf("%w: email mismatch", shared.ErrForbidden)
)

// Scope represents what an invitation grants access to.
type Scope string

const (
	// ScopeAgency grants agency-wide membership.
	ScopeAgency Scope = "agency"
	// ScopeProject grants membership in a single project.
	ScopeProject Scope = "project"
)

// IsValid checks if the scope is valid.
func (s Scope) IsValid() bool {
	return s == ScopeAgency || s == ScopeProject
}

// String returns the string representation of the scope.
func (s Scope) String() string {
	return string(s)
}

// ParseScope parses a string to a Scope.
func ParseScope(s string) (Scope, bool) {
	sc := Scope(s)
	return sc, sc.IsValid()
}

// InvitationStatus represents the lifecycle state of an invitation.
// ACCEPTED is terminal.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
)

// IsValid checks if the invitation status is valid.
func (s InvitationStatus) IsValid() bool {
	return s == InvitationPending || s == InvitationAccepted
}

// String returns the string representation of the status.
func (s InvitationStatus) String() string {
	return string(s)
}

// Invitation represents an invitation to join an agency or a project.
// Only the keyed hash of the token is ever held here; the plaintext exists
// once, in the issuance response.
type Invitation struct {
	id         shared.ID
	email      string
	role       Role
	scope      Scope
	resourceID shared.ID // agency ID or project ID, per scope
	tokenHash  string
	invitedBy  shared.ID
	status     InvitationStatus
	expiresAt  time.Time
	acceptedAt *time.Time
	createdAt  time.Time
}

// NewInvitation creates a new Invitation. The email is lowercased for
// case-insensitive matching at acceptance time. tokenHash must be the keyed
// hash of the plaintext token, never the plaintext itself.
func NewInvitation(email string, role Role, scope Scope, resourceID shared.ID, invitedBy shared.ID, tokenHash string) (*Invitation, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", shared.ErrValidation)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role", shared.ErrValidation)
	}
	if !scope.IsValid() {
		return nil, fmt.Errorf("%w: invalid scope", shared.ErrValidation)
	}
	if resourceID.IsZero() {
		return nil, fmt.Errorf("%w: resourceID is required", shared.ErrValidation)
	}
	if invitedBy.IsZero() {
		return nil, fmt.Errorf("%w: invitedBy is required", shared.ErrValidation)
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("%w: tokenHash is required", shared.ErrValidation)
	}

	now := time.Now().UTC()
	return &Invitation{
		id:         shared.NewID(),
		email:      strings.ToLower(email),
		role:       role,
		scope:      scope,
		resourceID: resourceID,
		tokenHash:  tokenHash,
		invitedBy:  invitedBy,
		status:     InvitationPending,
		expiresAt:  now.Add(DefaultInvitationExpiry),
		createdAt:  now,
	}, nil
}

// ReconstituteInvitation recreates an Invitation from persistence.
func ReconstituteInvitation(
	id shared.ID,
	email string,
	role Role,
	scope Scope,
	resourceID shared.ID,
	tokenHash string,
	invitedBy shared.ID,
	status InvitationStatus,
	expiresAt time.Time,
	acceptedAt *time.Time,
	createdAt time.Time,
) *Invitation {
	return &Invitation{
		id:         id,
		email:      email,
		role:       role,
		scope:      scope,
		resourceID: resourceID,
		tokenHash:  tokenHash,
		invitedBy:  invitedBy,
		status:     status,
		expiresAt:  expiresAt,
		acceptedAt: acceptedAt,
		createdAt:  createdAt,
	}
}

// ID returns the invitation ID.
func (i *Invitation) ID() shared.ID {
	return i.id
}

// Email returns the invitee's email (lowercased).
func (i *Invitation) Email() string {
	return i.email
}

// Role returns the role to be assigned on acceptance.
func (i *Invitation) Role() Role {
	return i.role
}

// Scope returns the invitation scope.
func (i *Invitation) Scope() Scope {
	return i.scope
}

// ResourceID returns the agency or project ID the invitation targets.
func (i *Invitation) ResourceID() shared.ID {
	return i.resourceID
}

// TokenHash returns the keyed hash of the invitation token.
func (i *Invitation) TokenHash() string {
	return i.tokenHash
}

// InvitedBy returns the user ID of who sent the invitation.
func (i *Invitation) InvitedBy() shared.ID {
	return i.invitedBy
}

// Status returns the invitation status.
func (i *Invitation) Status() InvitationStatus {
	return i.status
}

// ExpiresAt returns when the invitation expires.
func (i *Invitation) ExpiresAt() time.Time {
	return i.expiresAt
}

// AcceptedAt returns when the invitation was accepted (nil if not accepted).
func (i *Invitation) AcceptedAt() *time.Time {
	return i.acceptedAt
}

// CreatedAt returns when the invitation was created.
func (i *Invitation) CreatedAt() time.Time {
	return i.createdAt
}

// IsExpired checks if the invitation has passed its expiry time. Expiry is
// lazy: nothing flips stored rows, the check happens on redemption.
func (i *Invitation) IsExpired() bool {
	return !time.Now().UTC().Before(i.expiresAt)
}

// IsPending checks if the invitation is still pending.
func (i *Invitation) IsPending() bool {
	return i.status == InvitationPending
}

// CanBeAcceptedBy validates the invitation against the claimant's email.
// Checks run in a fixed order: status, expiry, then email match
// (case-insensitive).
func (i *Invitation) CanBeAcceptedBy(email string) error {
	if i.status != InvitationPending {
		return ErrInvitationNotPending
	}
	if i.IsExpired() {
		return ErrInvitationExpired
	}
	if !strings.EqualFold(i.email, email) {
		return ErrEmailMismatch
	}
	return nil
}

// Accept marks the invitation as accepted.
func (i *Invitation) Accept() {
	now := time.Now().UTC()
	i.status = InvitationAccepted
	i.acceptedAt = &now
}
