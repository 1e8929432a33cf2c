package handler

import (
	"net/http"
	"time"

	"github.com/campaignhub/api/internal/app"
	"github.com/campaignhub/api/internal/infra/http/middleware"
	"github.com/campaignhub/api/pkg/domain/client"
	"github.com/campaignhub/api/pkg/logger"
	"github.com/campaignhub/api/pkg/validator"
)

// BrandProfileHandler handles brand profile HTTP requests.
type BrandProfileHandler struct {
	service   *app.BrandProfileService
	validator *validator.Validator
	logger    *logger.Logger
}

// NewBrandProfileHandler creates a new brand profile handler.
func NewBrandProfileHandler(svc *app.BrandProfileService, v *validator.Validator, log *logger.Logger) *BrandProfileHandler {
	return &BrandProfileHandler{
		service:   svc,
		validator: v,
		logger:    log,
	}
}

// BrandProfileResponse represents a brand profile in API responses.
type BrandProfileResponse struct {
	ID              string         `json:"id"`
	ClientID        string         `json:"client_id"`
	BrandTone       string         `json:"brand_tone,omitempty"`
	Industry        string         `json:"industry,omitempty"`
	TargetAudience  string         `json:"target_audience,omitempty"`
	VoiceAttributes map[string]any `json:"voice_attributes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func toBrandProfileResponse(p *client.BrandProfile) BrandProfileResponse {
	return BrandProfileResponse{
		ID:              p.ID().String(),
		ClientID:        p.ClientID().String(),
		BrandTone:       p.BrandTone(),
		Industry:        p.Industry(),
		TargetAudience:  p.TargetAudience(),
		VoiceAttributes: p.VoiceAttributes(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

// Upsert handles PUT /api/v1/clients/{client}/profile
func (h *BrandProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	clientID, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	var req app.UpsertProfileInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	p, err := h.service.UpsertProfile(r.Context(), agencyID, clientID, req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toBrandProfileResponse(p))
}

// Get handles GET /api/v1/clients/{client}/profile
func (h *BrandProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	clientID, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.service.GetProfile(r.Context(), agencyID, clientID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toBrandProfileResponse(p))
}

// Delete handles DELETE /api/v1/clients/{client}/profile
func (h *BrandProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	clientID, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(r.Context(), agencyID, clientID); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
