package handler

import (
	"net/http"
	"time"

	"github.com/campaignhub/api/internal/app"
	infrahttp "github.com/campaignhub/api/internal/infra/http"
	"github.com/campaignhub/api/internal/infra/http/middleware"
	"github.com/campaignhub/api/pkg/apierror"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/tenant"
	"github.com/campaignhub/api/pkg/logger"
	"github.com/campaignhub/api/pkg/validator"
)

// TenantHandler handles agency and invitation HTTP requests.
type TenantHandler struct {
	service   *app.TenantService
	validator *validator.Validator
	logger    *logger.Logger
}

// NewTenantHandler creates a new tenant handler.
func NewTenantHandler(svc *app.TenantService, v *validator.Validator, log *logger.Logger) *TenantHandler {
	return &TenantHandler{
		service:   svc,
		validator: v,
		logger:    log,
	}
}

// =============================================================================
// Response Types
// =============================================================================

// AgencyResponse represents an agency in API responses.
type AgencyResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Settings  map[string]any `json:"settings"`
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// MemberResponse represents an agency member in API responses.
type MemberResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	InvitedBy string    `json:"invited_by,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
}

// InvitationResponse represents an invitation in API responses.
// Token carries the one-time plaintext and is only set on creation.
type InvitationResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Scope      string    `json:"scope"`
	ResourceID string    `json:"resource_id"`
	Token      string    `json:"token,omitempty"`
	InvitedBy  string    `json:"invited_by"`
	Status     string    `json:"status"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// AcceptanceResponse represents the result of redeeming an invitation.
type AcceptanceResponse struct {
	InvitationID string `json:"invitation_id"`
	Scope        string `json:"scope"`
	Role         string `json:"role"`
	AgencyID     string `json:"agency_id"`
	UserID       string `json:"user_id"`
}

// =============================================================================
// Request Types
// =============================================================================

// AcceptInvitationRequest carries the one-time plaintext token.
type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// =============================================================================
// Response Converters
// =============================================================================

func toAgencyResponse(a *tenant.Agency) AgencyResponse {
	return AgencyResponse{
		ID:        a.ID().String(),
		Name:      a.Name(),
		Slug:      a.Slug(),
		Settings:  a.Settings(),
		CreatedBy: a.CreatedBy().String(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func toMemberResponse(m *tenant.MemberWithUser) MemberResponse {
	var invitedBy string
	if m.InvitedBy != nil {
		invitedBy = m.InvitedBy.String()
	}
	return MemberResponse{
		ID:        m.ID.String(),
		UserID:    m.UserID.String(),
		Role:      m.Role.String(),
		Status:    m.Status.String(),
		InvitedBy: invitedBy,
		JoinedAt:  m.JoinedAt,
		Email:     m.Email,
		Name:      m.Name,
	}
}

func toInvitationResponse(inv *tenant.Invitation, plainToken string) InvitationResponse {
	return InvitationResponse{
		ID:         inv.ID().String(),
		Email:      inv.Email(),
		Role:       inv.Role().String(),
		Scope:      inv.Scope().String(),
		ResourceID: inv.ResourceID().String(),
		Token:      plainToken,
		InvitedBy:  inv.InvitedBy().String(),
		Status:     inv.Status().String(),
		ExpiresAt:  inv.ExpiresAt(),
		CreatedAt:  inv.CreatedAt(),
	}
}

// =============================================================================
// Agency Handlers
// =============================================================================

// CreateAgency handles POST /api/v1/agencies
// Context-optional: the caller typically has no agency yet.
func (h *TenantHandler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	localUser := middleware.GetLocalUser(r.Context())
	if localUser == nil {
		apierror.Unauthorized("Authentication required").WriteJSON(w)
		return
	}

	var req app.CreateAgencyInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	a, err := h.service.CreateAgency(r.Context(), req, localUser)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toAgencyResponse(a))
}

// GetAgency handles GET /api/v1/agencies/{agency}
// Accepts an agency ID or slug.
func (h *TenantHandler) GetAgency(w http.ResponseWriter, r *http.Request) {
	param := infrahttp.PathParam(r, "agency")
	if param == "" {
		apierror.BadRequest("Agency ID or slug is required").WriteJSON(w)
		return
	}

	var a *tenant.Agency
	var err error

	// Try to parse as UUID first
	if agencyID, parseErr := shared.IDFromString(param); parseErr == nil {
		a, err = h.service.GetAgency(r.Context(), agencyID)
	} else {
		a, err = h.service.GetAgencyBySlug(r.Context(), param)
	}

	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toAgencyResponse(a))
}

// ListMembers handles GET /api/v1/members
// The agency comes from the session's tenant context.
func (h *TenantHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())

	members, err := h.service.ListMembers(r.Context(), agencyID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	response := make([]MemberResponse, len(members))
	for i, m := range members {
		response[i] = toMemberResponse(m)
	}

	respondList(w, response, len(response))
}

// =============================================================================
// Invitation Handlers
// =============================================================================

// CreateInvitation handles POST /api/v1/invitations
// The response carries the one-time plaintext token; it is never retrievable
// again.
func (h *TenantHandler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	localUser := middleware.GetLocalUser(r.Context())
	if localUser == nil {
		apierror.Unauthorized("Authentication required").WriteJSON(w)
		return
	}

	var req app.CreateInvitationInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	inv, plainToken, err := h.service.CreateInvitation(r.Context(), req, localUser)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toInvitationResponse(inv, plainToken))
}

// ListInvitations handles GET /api/v1/invitations
// Lists pending invitations for the session's agency. A project scope can be
// selected with ?scope=project&resource_id={id}.
func (h *TenantHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())

	scope := tenant.ScopeAgency
	resourceID := agencyID

	if scopeParam := infrahttp.QueryParam(r, "scope"); scopeParam != "" {
		parsed, ok := tenant.ParseScope(scopeParam)
		if !ok {
			apierror.BadRequest("Invalid invitation scope").WriteJSON(w)
			return
		}
		scope = parsed
	}
	if scope == tenant.ScopeProject {
		idParam := infrahttp.QueryParam(r, "resource_id")
		id, err := shared.IDFromString(idParam)
		if err != nil {
			apierror.BadRequest("Invalid resource ID").WriteJSON(w)
			return
		}
		resourceID = id
	}

	invitations, err := h.service.ListPendingInvitations(r.Context(), scope, resourceID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	response := make([]InvitationResponse, len(invitations))
	for i, inv := range invitations {
		response[i] = toInvitationResponse(inv, "")
	}

	respondList(w, response, len(response))
}

// AcceptInvitation handles POST /api/v1/invitations/accept
// Context-optional: the accepting user usually has no tenant context yet.
// The claimed email comes from the verified identity, never from the body.
func (h *TenantHandler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())
	if ident == nil {
		apierror.Unauthorized("Authentication required").WriteJSON(w)
		return
	}

	var req AcceptInvitationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	result, err := h.service.AcceptInvitation(r.Context(), req.Token, ident)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, AcceptanceResponse{
		InvitationID: result.Invitation.ID().String(),
		Scope:        result.Invitation.Scope().String(),
		Role:         result.Invitation.Role().String(),
		AgencyID:     result.AgencyID.String(),
		UserID:       result.User.ID().String(),
	})
}
