package handler

import (
	"net/http"
	"time"

	"github.com/campaignhub/api/internal/app"
	infrahttp "github.com/campaignhub/api/internal/infra/http"
	"github.com/campaignhub/api/internal/infra/http/middleware"
	"github.com/campaignhub/api/pkg/apierror"
	"github.com/campaignhub/api/pkg/domain/project"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
	"github.com/campaignhub/api/pkg/validator"
)

// ProjectHandler handles project HTTP requests.
type ProjectHandler struct {
	service   *app.ProjectService
	validator *validator.Validator
	logger    *logger.Logger
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(svc *app.ProjectService, v *validator.Validator, log *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		service:   svc,
		validator: v,
		logger:    log,
	}
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID        string     `json:"id"`
	AgencyID  string     `json:"agency_id"`
	ClientID  string     `json:"client_id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID().String(),
		AgencyID:  p.AgencyID().String(),
		ClientID:  p.ClientID().String(),
		Name:      p.Name(),
		Status:    p.Status().String(),
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func projectIDParam(w http.ResponseWriter, r *http.Request) (shared.ID, bool) {
	id, err := shared.IDFromString(infrahttp.PathParam(r, "project"))
	if err != nil {
		apierror.BadRequest("Invalid project ID").WriteJSON(w)
		return shared.ID{}, false
	}
	return id, true
}

// Create handles POST /api/v1/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())

	var req app.CreateProjectInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	p, err := h.service.CreateProject(r.Context(), agencyID, req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toProjectResponse(p))
}

// List handles GET /api/v1/projects
// An optional ?client_id={id} filter narrows to one client.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())

	var projects []*project.Project
	var err error

	if clientParam := infrahttp.QueryParam(r, "client_id"); clientParam != "" {
		clientID, parseErr := shared.IDFromString(clientParam)
		if parseErr != nil {
			apierror.BadRequest("Invalid client ID").WriteJSON(w)
			return
		}
		projects, err = h.service.ListProjectsByClient(r.Context(), agencyID, clientID)
	} else {
		projects, err = h.service.ListProjects(r.Context(), agencyID)
	}

	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	response := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = toProjectResponse(p)
	}

	respondList(w, response, len(response))
}

// Get handles GET /api/v1/projects/{project}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := projectIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.service.GetProject(r.Context(), agencyID, id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toProjectResponse(p))
}

// Update handles PUT /api/v1/projects/{project}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := projectIDParam(w, r)
	if !ok {
		return
	}

	var req app.UpdateProjectInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	p, err := h.service.UpdateProject(r.Context(), agencyID, id, req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/v1/projects/{project}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := projectIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProject(r.Context(), agencyID, id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
