package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/campaignhub/api/internal/app"
	"github.com/campaignhub/api/internal/infra/http/middleware"
	"github.com/campaignhub/api/pkg/apierror"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
)

// MembershipResolver resolves the caller's membership in an agency.
type MembershipResolver interface {
	GetMembership(ctx context.Context, agencyID, userID shared.ID) (*app.CachedMembership, error)
}

// AuthHandler exposes identity information for the current session.
type AuthHandler struct {
	memberships MembershipResolver
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler. The resolver is optional; without
// one the response omits the membership block.
func NewAuthHandler(memberships MembershipResolver, log *logger.Logger) *AuthHandler {
	return &AuthHandler{memberships: memberships, logger: log}
}

// MeResponse represents the current session.
type MeResponse struct {
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	// AgencyID is the session's tenant context, empty when the credential
	// carries no organization.
	AgencyID string          `json:"agency_id,omitempty"`
	User     *MeUserResponse `json:"user,omitempty"`
	// Membership is the caller's membership in the session's agency,
	// omitted when there is no tenant context or no membership.
	Membership *MeMembershipResponse `json:"membership,omitempty"`
}

// MeMembershipResponse is the caller's membership in the session's agency.
type MeMembershipResponse struct {
	ID     string `json:"id"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// MeUserResponse is the local user projection.
type MeUserResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	PrimaryAgencyID string `json:"primary_agency_id,omitempty"`
	PrimaryRole     string `json:"primary_role,omitempty"`
}

// Me handles GET /api/v1/me
// Context-optional: works with or without tenant context.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())
	if ident == nil {
		apierror.Unauthorized("Authentication required").WriteJSON(w)
		return
	}

	resp := MeResponse{
		ExternalID: ident.SubjectID,
		Email:      ident.Email,
		Name:       ident.Name,
	}

	if agencyID := middleware.GetTenantID(r.Context()); !agencyID.IsZero() {
		resp.AgencyID = agencyID.String()
	}

	if localUser := middleware.GetLocalUser(r.Context()); localUser != nil {
		u := &MeUserResponse{
			ID:    localUser.ID().String(),
			Email: localUser.Email(),
		}
		if localUser.PrimaryAgencyID() != nil {
			u.PrimaryAgencyID = localUser.PrimaryAgencyID().String()
		}
		if localUser.PrimaryRole() != nil {
			u.PrimaryRole = localUser.PrimaryRole().String()
		}
		resp.User = u
	}

	resp.Membership = h.resolveMembership(r.Context())

	respondJSON(w, http.StatusOK, resp)
}

// resolveMembership looks up the caller's membership in the session's agency
// through the cache. Best effort; a miss or error leaves the block out.
func (h *AuthHandler) resolveMembership(ctx context.Context) *MeMembershipResponse {
	if h.memberships == nil {
		return nil
	}
	agencyID := middleware.GetTenantID(ctx)
	localUser := middleware.GetLocalUser(ctx)
	if agencyID.IsZero() || localUser == nil {
		return nil
	}

	m, err := h.memberships.GetMembership(ctx, agencyID, localUser.ID())
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Warn("failed to resolve membership",
				"agency_id", agencyID.String(),
				"error", err,
			)
		}
		return nil
	}
	return &MeMembershipResponse{
		ID:     m.MembershipID,
		Role:   m.Role,
		Status: m.Status,
	}
}
