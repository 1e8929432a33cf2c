package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campaignhub/api/internal/config"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates ID when absent", func(t *testing.T) {
		var captured string
		h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if captured == "" {
			t.Error("request ID not set in context")
		}
		if rec.Header().Get("X-Request-ID") != captured {
			t.Error("request ID not echoed in response header")
		}
	})

	t.Run("preserves client-provided ID", func(t *testing.T) {
		var captured string
		h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "client-id-42")
		h.ServeHTTP(httptest.NewRecorder(), req)

		if captured != "client-id-42" {
			t.Errorf("request ID = %q, want client-id-42", captured)
		}
	})
}

func TestRequireTenant(t *testing.T) {
	t.Run("passes with tenant in context", func(t *testing.T) {
		h := RequireTenant()(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), TenantIDKey, shared.NewID()))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("rejects missing tenant with 403", func(t *testing.T) {
		h := RequireTenant()(okHandler())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		// A valid credential without an agency context is authenticated but
		// not authorized for tenant-scoped routes.
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("rejects zero tenant ID", func(t *testing.T) {
		h := RequireTenant()(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), TenantIDKey, shared.ID{}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})
}

func TestGetTenantID(t *testing.T) {
	if !GetTenantID(context.Background()).IsZero() {
		t.Error("GetTenantID on empty context should be zero")
	}

	id := shared.NewID()
	ctx := context.WithValue(context.Background(), TenantIDKey, id)
	if GetTenantID(ctx) != id {
		t.Error("GetTenantID should return stored ID")
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders()(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}

func TestBodyLimit(t *testing.T) {
	drain := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				HandleBodyLimitError(w, r)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("small body passes", func(t *testing.T) {
		h := BodyLimit(64)(drain)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("oversized body rejected at read time", func(t *testing.T) {
		h := BodyLimit(8)(drain)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d, want 413", rec.Code)
		}
	})

	t.Run("GET is not wrapped", func(t *testing.T) {
		h := BodyLimit(1)(okHandler())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	cfg := &config.RateLimitConfig{
		Enabled:        true,
		RequestsPerSec: 1,
		Burst:          2,
	}
	rl := NewRateLimiter(cfg, logger.NewNop())
	defer rl.Stop()

	h := rl.Middleware()(okHandler())

	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.7:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("burst requests should pass, got %v", statuses)
	}
	if statuses[3] != http.StatusTooManyRequests {
		t.Errorf("request beyond burst should get 429, got %v", statuses)
	}

	t.Run("distinct IPs have separate buckets", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("fresh IP should pass, got %d", rec.Code)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		realIP     string
		forwarded  string
		want       string
	}{
		{"remote addr only", "192.0.2.1:5000", "", "", "192.0.2.1"},
		{"x-real-ip wins", "192.0.2.1:5000", "203.0.113.5", "", "203.0.113.5"},
		{"x-forwarded-for first hop", "192.0.2.1:5000", "", "198.51.100.2, 10.0.0.1", "198.51.100.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/clients", "/api/v1/clients"},
		{"/api/v1/clients/a2f1c6e4-3b5d-4e7f-9a1b-2c3d4e5f6a7b", "/api/v1/clients/{id}"},
		{"/api/v1/projects/12345", "/api/v1/projects/{id}"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
