package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantStatus int
		wantCode   Code
	}{
		{"bad request", BadRequest("bad input"), http.StatusBadRequest, CodeBadRequest},
		{"unauthorized", Unauthorized("no token"), http.StatusUnauthorized, CodeUnauthorized},
		{"forbidden", Forbidden("no access"), http.StatusForbidden, CodeForbidden},
		{"not found", NotFound("agency"), http.StatusNotFound, CodeNotFound},
		{"conflict", Conflict("slug taken"), http.StatusConflict, CodeConflict},
		{"validation failed", ValidationFailed("Validation failed", nil), http.StatusUnprocessableEntity, CodeValidationFailed},
		{"too many requests", TooManyRequests(""), http.StatusTooManyRequests, CodeRateLimitExceeded},
		{"internal", InternalError(errors.New("boom")), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	e := Conflict("slug taken")
	if e.Error() != "CONFLICT: slug taken" {
		t.Errorf("Error() = %q", e.Error())
	}

	wrapped := Conflict("slug taken").WithError(errors.New("pq: duplicate key"))
	if wrapped.Error() != "CONFLICT: slug taken: pq: duplicate key" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Error("Unwrap() should expose the internal error")
	}
}

func TestError_WriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	Forbidden("Agency context required").WriteJSON(rec)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Code != CodeForbidden || resp.Message != "Agency context required" {
		t.Errorf("body = %+v", resp)
	}
}

func TestError_InternalNotExposed(t *testing.T) {
	e := InternalError(errors.New("secret db detail"))

	body, err := json.Marshal(e.ToResponse())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(body), "secret db detail") {
		t.Error("internal error detail leaked into response body")
	}
}

func TestFromError(t *testing.T) {
	orig := NotFound("client")
	if got := FromError(orig); got != orig {
		t.Error("FromError should return the original *Error")
	}

	got := FromError(errors.New("plain"))
	if got.Status != http.StatusInternalServerError {
		t.Errorf("FromError(plain).Status = %d, want 500", got.Status)
	}

	if FromError(nil) != nil {
		t.Error("FromError(nil) should be nil")
	}
}
