package routes

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campaignhub/api/internal/infra/http/handler"
)

// registerMiscRoutes registers health, metrics, and whoami endpoints.
func registerMiscRoutes(
	router Router,
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	authMiddleware, userSync Middleware,
) {
	if health != nil {
		router.GET("/health", health.Health)
		router.GET("/ready", health.Ready)
		router.GET("/api/v1/health", health.Health)
	}

	// Prometheus metrics (scraped internally, not exposed publicly)
	router.GET("/metrics", promhttp.Handler().ServeHTTP)

	if auth != nil {
		router.GET("/api/v1/me", auth.Me, baseMiddlewares(authMiddleware, userSync)...)
	}
}
