package handler

import (
	"net/http"
	"time"

	"github.com/campaignhub/api/internal/app"
	infrahttp "github.com/campaignhub/api/internal/infra/http"
	"github.com/campaignhub/api/internal/infra/http/middleware"
	"github.com/campaignhub/api/pkg/apierror"
	"github.com/campaignhub/api/pkg/domain/client"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
	"github.com/campaignhub/api/pkg/validator"
)

// ClientHandler handles client HTTP requests.
type ClientHandler struct {
	service   *app.ClientService
	validator *validator.Validator
	logger    *logger.Logger
}

// NewClientHandler creates a new client handler.
func NewClientHandler(svc *app.ClientService, v *validator.Validator, log *logger.Logger) *ClientHandler {
	return &ClientHandler{
		service:   svc,
		validator: v,
		logger:    log,
	}
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID          string         `json:"id"`
	AgencyID    string         `json:"agency_id"`
	Name        string         `json:"name"`
	ContactInfo map[string]any `json:"contact_info,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID().String(),
		AgencyID:    c.AgencyID().String(),
		Name:        c.Name(),
		ContactInfo: c.ContactInfo(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// clientIDParam parses the {client} path parameter.
func clientIDParam(w http.ResponseWriter, r *http.Request) (shared.ID, bool) {
	id, err := shared.IDFromString(infrahttp.PathParam(r, "client"))
	if err != nil {
		apierror.BadRequest("Invalid client ID").WriteJSON(w)
		return shared.ID{}, false
	}
	return id, true
}

// Create handles POST /api/v1/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())

	var req app.CreateClientInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	c, err := h.service.CreateClient(r.Context(), agencyID, req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toClientResponse(c))
}

// List handles GET /api/v1/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())

	clients, err := h.service.ListClients(r.Context(), agencyID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	response := make([]ClientResponse, len(clients))
	for i, c := range clients {
		response[i] = toClientResponse(c)
	}

	respondList(w, response, len(response))
}

// Get handles GET /api/v1/clients/{client}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.service.GetClient(r.Context(), agencyID, id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toClientResponse(c))
}

// Update handles PUT /api/v1/clients/{client}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	var req app.UpdateClientInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleValidationError(w, err)
		return
	}

	c, err := h.service.UpdateClient(r.Context(), agencyID, id, req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toClientResponse(c))
}

// Delete handles DELETE /api/v1/clients/{client}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	agencyID := middleware.GetTenantID(r.Context())
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteClient(r.Context(), agencyID, id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
