package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pinger interface for health check dependencies.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

// Ping implements Pinger.
func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db    Pinger
	redis Pinger
}

// HealthHandlerOption configures the health handler.
type HealthHandlerOption func(*HealthHandler)

// WithDatabase adds database health check.
func WithDatabase(db Pinger) HealthHandlerOption {
	return func(h *HealthHandler) {
		h.db = db
	}
}

// WithRedis adds Redis health check.
func WithRedis(redis Pinger) HealthHandlerOption {
	return func(h *HealthHandler) {
		h.redis = redis
	}
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(opts ...HealthHandlerOption) *HealthHandler {
	h := &HealthHandler{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles the /health endpoint (liveness probe).
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult represents a single health check result.
type CheckResult struct {
	Status   string `json:"status"`
	Duration string `json:"duration,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Ready handles the /ready endpoint (readiness probe).
// Checks all dependencies and returns 503 if any are unhealthy.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckResult)
	allHealthy := true

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	check := func(name string, pinger Pinger) func() error {
		return func() error {
			result := h.checkDependency(gctx, pinger)
			mu.Lock()
			checks[name] = result
			if result.Status != "ok" {
				allHealthy = false
			}
			mu.Unlock()
			return nil
		}
	}

	if h.db != nil {
		g.Go(check("database", h.db))
	}
	if h.redis != nil {
		g.Go(check("redis", h.redis))
	}

	_ = g.Wait()

	status := "ready"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	respondJSON(w, statusCode, ReadyResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}

// checkDependency pings a dependency and returns the result.
func (h *HealthHandler) checkDependency(ctx context.Context, pinger Pinger) CheckResult {
	start := time.Now()
	err := pinger.Ping(ctx)
	duration := time.Since(start)

	if err != nil {
		return CheckResult{
			Status:   "error",
			Duration: duration.String(),
			Error:    err.Error(),
		}
	}

	return CheckResult{
		Status:   "ok",
		Duration: duration.String(),
	}
}
