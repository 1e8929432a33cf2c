package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/campaignhub/api/pkg/apierror"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
	"github.com/campaignhub/api/pkg/validator"
)

// decodeJSON decodes the request body into dst.
// Writes a 400 response and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apierror.BadRequest("Invalid request body").WriteJSON(w)
		return false
	}
	return true
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondList writes the standard list envelope.
func respondList(w http.ResponseWriter, data any, total int) {
	respondJSON(w, http.StatusOK, map[string]any{
		"data":  data,
		"total": total,
	})
}

// handleValidationError writes a 422 with per-field details.
func handleValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		apiErrors := make([]apierror.ValidationError, len(validationErrors))
		for i, ve := range validationErrors {
			apiErrors[i] = apierror.ValidationError{
				Field:   ve.Field,
				Message: ve.Message,
			}
		}
		apierror.ValidationFailed("Validation failed", apiErrors).WriteJSON(w)
		return
	}
	apierror.BadRequest("Validation error").WriteJSON(w)
}

// handleServiceError translates shared domain sentinels to API errors.
// Raw storage errors never reach the client; anything unrecognized becomes a
// logged 500.
func handleServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		apierror.BadRequest(errorMessage(err)).WriteJSON(w)
	case errors.Is(err, shared.ErrNotFound):
		apierror.New(http.StatusNotFound, apierror.CodeNotFound, errorMessage(err)).WriteJSON(w)
	case errors.Is(err, shared.ErrConflict):
		apierror.Conflict(errorMessage(err)).WriteJSON(w)
	case errors.Is(err, shared.ErrForbidden):
		apierror.Forbidden(errorMessage(err)).WriteJSON(w)
	case errors.Is(err, shared.ErrUnauthorized):
		apierror.Unauthorized(errorMessage(err)).WriteJSON(w)
	default:
		log.Error("service error", "error", err)
		apierror.InternalError(err).WriteJSON(w)
	}
}

// errorMessage strips the sentinel prefix from a wrapped domain error.
// "forbidden: only OWNER or ADMIN can invite" -> "only OWNER or ADMIN can invite".
func errorMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
