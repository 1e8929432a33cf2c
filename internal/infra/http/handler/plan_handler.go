package handler

import (
	"net/http"
	"time"

	"github.com/campaignhub/api/internal/app"
	infrahttp "github.com/campaignhub/api/internal/infra/http"
	"github.com/campaignhub/api/internal/infra/http/middleware"
	"github.com/campaignhub/api/pkg/apierror"
	"github.com/campaignhub/api/pkg/domain/plan"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
	"github.com/campaignhub/api/pkg/validator"
)

// PlanHandler handles campaign plan HTTP requests.
type PlanHandler struct {
	service   *app.PlanService
	validator *validator.Validator
	logger    *logger.Logger
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(svc *app.PlanService, v *validator.Validator, log *logger.Logger) *PlanHandler {
	return &PlanHandler{
		service:   svc,
		validator: v,
		logger:    log,
	}
}

// PlanResponse represents a campaign plan in API responses.
type PlanResponse struct {
	ID           string    `json:"id"`
	AgencyID     string    `json:"agency_id"`
	ProjectID    string    `json:"project_id"`
	Goals        []string  `json:"goals"`
	Themes       []string  `json:"themes"`
	Events       []string  `json:"events"`
	NumPosts     int       `json:"num_posts"`
	NumReels     int       `json:"num_reels"`
	SplitPercent int       `json:"split_percent"`
	MeetingNotes string    `json:"meeting_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toPlanResponse(p *plan.CampaignPlan) PlanResponse {
	return PlanResponse{
		ID:           p.ID().String(),
		AgencyID:     p.AgencyID().String(),
		ProjectID:    p.ProjectID().String(),
		Goals:        p.Goals(),
		Themes:       p.Themes(),
		Events:       p.Events(),
		NumPosts:     p.NumPosts(),
		NumReels:     p.NumReels(),
		SplitPercent: p.SplitPercent(),
		MeetingNotes: p.MeetingNotes(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func planIDParam(w http.ResponseWriter, r *http.Request) (shared.ID, bool) {
	id, err := shared.IDFromString(infrahttp.PathParam(r, "plan"))
	if err != nil {
		apierror.BadRequest("Invalid plan ID").WriteJSON(w)
		return shared.ID{}, false
	}
	return id, true
}

// Create handles POST /api/v1/plans
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())

	var req app.CreatePlanInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	p, err := h.service.CreatePlan(r.Context(), agencyID, req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toPlanResponse(p))
}

// List handles GET /api/v1/plans
// An optional ?project_id={id} filter returns the single plan of a project.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())

	if projectParam := infrahttp.QueryParam(r, "project_id"); projectParam != "" {
		projectID, parseErr := shared.IDFromString(projectParam)
		if parseErr != nil {
			apierror.BadRequest("Invalid project ID").WriteJSON(w)
			return
		}

		p, err := h.service.GetPlanByProject(r.Context(), agencyID, projectID)
		if err != nil {
			handleServiceError(w, h.logger, err)
			return
		}
		respondList(w, []PlanResponse{toPlanResponse(p)}, 1)
		return
	}

	plans, err := h.service.ListPlans(r.Context(), agencyID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	response := make([]PlanResponse, len(plans))
	for i, p := range plans {
		response[i] = toPlanResponse(p)
	}

	respondList(w, response, len(response))
}

// Get handles GET /api/v1/plans/{plan}
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := planIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.service.GetPlan(r.Context(), agencyID, id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toPlanResponse(p))
}

// Update handles PUT /api/v1/plans/{plan}
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := planIDParam(w, r)
	if !ok {
		return
	}

	var req app.PlanFieldsInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	p, err := h.service.UpdatePlan(r.Context(), agencyID, id, req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toPlanResponse(p))
}

// Delete handles DELETE /api/v1/plans/{plan}
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := planIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePlan(r.Context(), agencyID, id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
