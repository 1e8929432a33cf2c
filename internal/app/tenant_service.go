package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campaignhub/api/internal/metrics"
	"github.com/campaignhub/api/pkg/domain/project"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/tenant"
	"github.com/campaignhub/api/pkg/domain/user"
	"github.com/campaignhub/api/pkg/idp"
	"github.com/campaignhub/api/pkg/logger"
	"github.com/campaignhub/api/pkg/token"
)

// EmailJobEnqueuer defines the interface for enqueueing email jobs.
type EmailJobEnqueuer interface {
	EnqueueInvitationEmail(ctx context.Context, payload InvitationJobPayload) error
	EnqueueWelcomeEmail(ctx context.Context, payload WelcomeJobPayload) error
}

// InvitationJobPayload contains data for invitation email jobs.
type InvitationJobPayload struct {
	RecipientEmail string
	InviterName    string
	ResourceName   string
	Scope          string
	Role           string
	Token          string
	ExpiresIn      time.Duration
	InvitationID   string
}

// WelcomeJobPayload contains data for welcome email jobs.
type WelcomeJobPayload struct {
	UserEmail string
	UserName  string
	UserID    string
}

// TenantService handles agencies, memberships, and invitations.
type TenantService struct {
	repo            tenant.Repository
	users           user.Repository
	projects        project.Repository
	hasher          *token.Hasher
	emailEnqueuer   EmailJobEnqueuer
	membershipCache *MembershipCacheService
	logger          *logger.Logger
}

// TenantServiceOption is a functional option for TenantService.
type TenantServiceOption func(*TenantService)

// WithEmailEnqueuer sets the email job enqueuer for TenantService.
func WithEmailEnqueuer(enqueuer EmailJobEnqueuer) TenantServiceOption {
	return func(s *TenantService) {
		s.emailEnqueuer = enqueuer
	}
}

// WithMembershipCacheService sets the membership cache for TenantService.
// Enables immediate cache invalidation when memberships change.
func WithMembershipCacheService(svc *MembershipCacheService) TenantServiceOption {
	return func(s *TenantService) {
		s.membershipCache = svc
	}
}

// NewTenantService creates a new TenantService.
func NewTenantService(
	repo tenant.Repository,
	users user.Repository,
	projects project.Repository,
	hasher *token.Hasher,
	log *logger.Logger,
	opts ...TenantServiceOption,
) *TenantService {
	s := &TenantService{
		repo:     repo,
		users:    users,
		projects: projects,
		hasher:   hasher,
		logger:   log.With("service", "tenant"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =============================================================================
// Agency Operations
// =============================================================================

// CreateAgencyInput represents the input for creating an agency.
// Settings is an opaque key-value map stored as given.
type CreateAgencyInput struct {
	Name     string         `json:"name" validate:"required,min=2,max=100"`
	Slug     string         `json:"slug" validate:"required,min=3,max=100,slug"`
	Settings map[string]any `json:"settings"`
}

// CreateAgency creates a new agency with the creator as OWNER. The agency,
// the owner membership, and the creator's primary tenant context are written
// in one transaction; a duplicate slug leaves nothing persisted.
func (s *TenantService) CreateAgency(ctx context.Context, input CreateAgencyInput, creator *user.User) (*tenant.Agency, error) {
	if creator.HasPrimaryAgency() {
		return nil, fmt.Errorf("%w: user already belongs to an agency", shared.ErrConflict)
	}

	a, err := tenant.NewAgency(input.Name, input.Slug, creator.ID(), input.Settings)
	if err != nil {
		return nil, err
	}

	owner, err := tenant.NewOwnerMembership(a.ID(), creator.ID())
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateAgencyTx(ctx, a, owner); err != nil {
		return nil, err
	}

	metrics.AgenciesCreatedTotal.Inc()
	metrics.MembershipsCreatedTotal.WithLabelValues(tenant.ScopeAgency.String()).Inc()

	s.logger.Info("agency created",
		"id", a.ID().String(),
		"slug", a.Slug(),
		"owner", creator.ID().String(),
	)

	if s.membershipCache != nil {
		s.membershipCache.Invalidate(ctx, a.ID(), creator.ID())
	}

	return a, nil
}

// GetAgency retrieves an agency by ID.
func (s *TenantService) GetAgency(ctx context.Context, agencyID shared.ID) (*tenant.Agency, error) {
	return s.repo.GetByID(ctx, agencyID)
}

// GetAgencyBySlug retrieves an agency by slug.
func (s *TenantService) GetAgencyBySlug(ctx context.Context, slug string) (*tenant.Agency, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// ListMembers lists agency members with user details.
func (s *TenantService) ListMembers(ctx context.Context, agencyID shared.ID) ([]*tenant.MemberWithUser, error) {
	return s.repo.ListMembersWithUserInfo(ctx, agencyID)
}

// GetMembership retrieves a user's membership in an agency.
func (s *TenantService) GetMembership(ctx context.Context, agencyID, userID shared.ID) (*tenant.Membership, error) {
	return s.repo.GetMembership(ctx, agencyID, userID)
}

// =============================================================================
// Invitation Operations
// =============================================================================

// CreateInvitationInput represents the input for creating an invitation.
type CreateInvitationInput struct {
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required,member_role"`
	Scope      string `json:"scope" validate:"required,invite_scope"`
	ResourceID string `json:"resource_id" validate:"required,uuid"`
}

// CreateInvitation creates an invitation and returns it together with the
// one-time plaintext token. The plaintext exists only in this return value;
// the store holds the keyed hash.
func (s *TenantService) CreateInvitation(ctx context.Context, input CreateInvitationInput, inviter *user.User) (*tenant.Invitation, string, error) {
	if inviter.PrimaryRole() == nil || !inviter.PrimaryRole().CanInvite() {
		return nil, "", fmt.Errorf("%w: only OWNER or ADMIN can invite", shared.ErrForbidden)
	}

	role, ok := tenant.ParseRole(input.Role)
	if !ok {
		return nil, "", fmt.Errorf("%w: invalid role", shared.ErrValidation)
	}

	scope, ok := tenant.ParseScope(input.Scope)
	if !ok {
		return nil, "", fmt.Errorf("%w: invalid scope", shared.ErrValidation)
	}

	resourceID, err := shared.IDFromString(input.ResourceID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid resource id", shared.ErrValidation)
	}

	plain, err := token.GeneratePlain()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate invitation token: %w", err)
	}

	inv, err := tenant.NewInvitation(input.Email, role, scope, resourceID, inviter.ID(), s.hasher.Hash(plain))
	if err != nil {
		return nil, "", err
	}

	if err := s.repo.CreateInvitation(ctx, inv); err != nil {
		return nil, "", fmt.Errorf("failed to create invitation: %w", err)
	}

	metrics.InvitationsIssuedTotal.WithLabelValues(scope.String(), role.String()).Inc()

	s.logger.Info("invitation created",
		"id", inv.ID().String(),
		"scope", scope.String(),
		"role", role.String(),
		"resource_id", resourceID.String(),
	)

	s.enqueueInvitationEmail(ctx, inv, plain, inviter)

	return inv, plain, nil
}

// enqueueInvitationEmail enqueues the invitation email job. Best effort;
// failures never fail issuance.
func (s *TenantService) enqueueInvitationEmail(ctx context.Context, inv *tenant.Invitation, plain string, inviter *user.User) {
	if s.emailEnqueuer == nil {
		return
	}

	resourceName := s.resourceName(ctx, inv.Scope(), inv.ResourceID())

	payload := InvitationJobPayload{
		RecipientEmail: inv.Email(),
		InviterName:    inviter.Name(),
		ResourceName:   resourceName,
		Scope:          inv.Scope().String(),
		Role:           inv.Role().String(),
		Token:          plain,
		ExpiresIn:      time.Until(inv.ExpiresAt()),
		InvitationID:   inv.ID().String(),
	}

	if err := s.emailEnqueuer.EnqueueInvitationEmail(ctx, payload); err != nil {
		s.logger.Error("failed to enqueue invitation email",
			"invitation_id", inv.ID().String(),
			"error", err,
		)
		return
	}

	metrics.InvitationEmailsEnqueuedTotal.Inc()
	s.logger.Info("invitation email queued", "invitation_id", inv.ID().String())
}

// resourceName resolves a display name for the invitation target.
func (s *TenantService) resourceName(ctx context.Context, scope tenant.Scope, resourceID shared.ID) string {
	switch scope {
	case tenant.ScopeAgency:
		if a, err := s.repo.GetByID(ctx, resourceID); err == nil {
			return a.Name()
		}
		return "the agency"
	case tenant.ScopeProject:
		if p, err := s.projects.Lookup(ctx, resourceID); err == nil {
			return p.Name()
		}
		return "the project"
	}
	return ""
}

// AcceptanceResult describes the effect of an accepted invitation.
type AcceptanceResult struct {
	Invitation *tenant.Invitation
	User       *user.User
	// AgencyID is the agency the membership belongs to. For project-scope
	// invitations this is the project's owning agency.
	AgencyID shared.ID
}

// AcceptInvitation redeems a plaintext invitation token for the identity that
// presented it.
func (s *TenantService) AcceptInvitation(ctx context.Context, plainToken string, ident *idp.Identity) (*AcceptanceResult, error) {
	start := time.Now()
	result, err := s.acceptInvitation(ctx, plainToken, ident)
	metrics.InvitationAcceptDuration.Observe(time.Since(start).Seconds())
	metrics.InvitationAcceptsTotal.WithLabelValues(acceptOutcome(err)).Inc()
	return result, err
}

func (s *TenantService) acceptInvitation(ctx context.Context, plainToken string, ident *idp.Identity) (*AcceptanceResult, error) {
	if plainToken == "" {
		return nil, tenant.ErrInvalidToken
	}

	inv, err := s.repo.GetInvitationByTokenHash(ctx, s.hasher.Hash(plainToken))
	if err != nil {
		// A store miss and a malformed token are the same error; callers
		// cannot probe which tokens exist.
		if errors.Is(err, shared.ErrNotFound) {
			return nil, tenant.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	if err := inv.CanBeAcceptedBy(ident.Email); err != nil {
		return nil, err
	}

	usr, err := s.resolveOrCreateUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	grant, agencyID, err := s.buildGrant(ctx, inv, usr)
	if err != nil {
		return nil, err
	}

	inv.Accept()

	if err := s.repo.AcceptInvitationTx(ctx, inv, grant); err != nil {
		return nil, err
	}

	metrics.MembershipsCreatedTotal.WithLabelValues(inv.Scope().String()).Inc()

	s.logger.Info("invitation accepted",
		"invitation_id", inv.ID().String(),
		"scope", inv.Scope().String(),
		"user_id", usr.ID().String(),
	)

	if s.membershipCache != nil {
		s.membershipCache.Invalidate(ctx, agencyID, usr.ID())
	}

	return &AcceptanceResult{
		Invitation: inv,
		User:       usr,
		AgencyID:   agencyID,
	}, nil
}

// resolveOrCreateUser finds the local user for the accepting identity,
// creating one when the invitee has never signed in before.
func (s *TenantService) resolveOrCreateUser(ctx context.Context, ident *idp.Identity) (*user.User, error) {
	usr, err := s.users.GetByExternalID(ctx, ident.SubjectID)
	if err == nil {
		return usr, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	nu, err := user.NewFromIdentity(ident.SubjectID, ident.Email, ident.Name)
	if err != nil {
		return nil, err
	}

	usr, err = s.users.Upsert(ctx, nu)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.enqueueWelcomeEmail(ctx, usr)

	return usr, nil
}

// enqueueWelcomeEmail enqueues the welcome email for a first-time user.
// Best effort; failures never fail acceptance.
func (s *TenantService) enqueueWelcomeEmail(ctx context.Context, usr *user.User) {
	if s.emailEnqueuer == nil {
		return
	}

	payload := WelcomeJobPayload{
		UserEmail: usr.Email(),
		UserName:  usr.Name(),
		UserID:    usr.ID().String(),
	}

	if err := s.emailEnqueuer.EnqueueWelcomeEmail(ctx, payload); err != nil {
		s.logger.Error("failed to enqueue welcome email",
			"user_id", usr.ID().String(),
			"error", err,
		)
		return
	}

	s.logger.Info("welcome email queued", "user_id", usr.ID().String())
}

// buildGrant translates the invitation into the membership and primary
// context changes applied inside the acceptance transaction.
func (s *TenantService) buildGrant(ctx context.Context, inv *tenant.Invitation, usr *user.User) (tenant.AcceptanceGrant, shared.ID, error) {
	invitedBy := inv.InvitedBy()

	switch inv.Scope() {
	case tenant.ScopeAgency:
		m, err := tenant.NewMembership(inv.ResourceID(), usr.ID(), inv.Role(), &invitedBy)
		if err != nil {
			return tenant.AcceptanceGrant{}, shared.ID{}, err
		}
		return tenant.AcceptanceGrant{
			AgencyMembership: m,
			UserID:           usr.ID(),
			PrimaryAgencyID:  inv.ResourceID(),
			PrimaryRole:      inv.Role(),
			OverwritePrimary: true,
		}, inv.ResourceID(), nil

	case tenant.ScopeProject:
		proj, err := s.projects.Lookup(ctx, inv.ResourceID())
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return tenant.AcceptanceGrant{}, shared.ID{}, fmt.Errorf("%w: project not found", shared.ErrNotFound)
			}
			return tenant.AcceptanceGrant{}, shared.ID{}, fmt.Errorf("failed to look up project: %w", err)
		}

		pm, err := tenant.NewProjectMembership(inv.ResourceID(), usr.ID(), inv.Role(), &invitedBy)
		if err != nil {
			return tenant.AcceptanceGrant{}, shared.ID{}, err
		}
		return tenant.AcceptanceGrant{
			ProjectMembership: pm,
			UserID:            usr.ID(),
			PrimaryAgencyID:   proj.AgencyID(),
			PrimaryRole:       inv.Role(),
			OverwritePrimary:  false,
		}, proj.AgencyID(), nil
	}

	return tenant.AcceptanceGrant{}, shared.ID{}, fmt.Errorf("%w: invalid invitation scope", shared.ErrInternal)
}

// acceptOutcome maps an acceptance error to its metrics label.
func acceptOutcome(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, tenant.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, tenant.ErrInvitationNotPending):
		return "not_pending"
	case errors.Is(err, tenant.ErrInvitationExpired):
		return "expired"
	case errors.Is(err, tenant.ErrEmailMismatch):
		return "email_mismatch"
	default:
		return "error"
	}
}

// GetInvitation retrieves an invitation by ID.
func (s *TenantService) GetInvitation(ctx context.Context, id shared.ID) (*tenant.Invitation, error) {
	return s.repo.GetInvitationByID(ctx, id)
}

// ListPendingInvitations lists pending invitations for an agency or project.
func (s *TenantService) ListPendingInvitations(ctx context.Context, scope tenant.Scope, resourceID shared.ID) ([]*tenant.Invitation, error) {
	if !scope.IsValid() {
		return nil, fmt.Errorf("%w: invalid scope", shared.ErrValidation)
	}
	return s.repo.ListPendingInvitationsByResource(ctx, scope, resourceID)
}
