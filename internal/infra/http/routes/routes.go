// Package routes registers all HTTP routes for the API.
// Routes are organized by domain for maintainability.
package routes

import (
	"github.com/campaignhub/api/internal/app"
	infrahttp "github.com/campaignhub/api/internal/infra/http"
	"github.com/campaignhub/api/internal/infra/http/handler"
	"github.com/campaignhub/api/internal/infra/http/middleware"
	"github.com/campaignhub/api/pkg/idp"
	"github.com/campaignhub/api/pkg/logger"
)

// Middleware is an alias to the http package's Middleware type.
type Middleware = infrahttp.Middleware

// Router is an alias to the http package's Router interface.
type Router = infrahttp.Router

// Handlers holds all HTTP handlers for route registration.
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Tenant  *handler.TenantHandler
	Client  *handler.ClientHandler
	Profile *handler.BrandProfileHandler
	Project *handler.ProjectHandler
	Plan    *handler.PlanHandler
}

// Register registers all application routes.
// This keeps route definitions in the infrastructure layer, not in main.
//
// Routes are organized across multiple files by domain:
//   - tenant.go: agencies, members, invitations
//   - campaign.go: clients, projects, campaign plans
//   - misc.go: health, metrics, whoami
func Register(
	router Router,
	h Handlers,
	log *logger.Logger,
	verifier *idp.Verifier,
	userService *app.UserService,
) {
	authMiddleware := middleware.Auth(verifier, log)
	userSync := middleware.UserSync(userService, log)

	// Health and metrics routes (public)
	registerMiscRoutes(router, h.Health, h.Auth, authMiddleware, userSync)

	// Agency, member, and invitation routes
	if h.Tenant != nil {
		registerTenantRoutes(router, h.Tenant, authMiddleware, userSync)
	}

	// Client, project, and plan routes (tenant from the credential)
	registerCampaignRoutes(router, h, authMiddleware, userSync)
}

// baseMiddlewares builds the chain every authenticated route carries:
// credential verification followed by local user sync.
func baseMiddlewares(authMiddleware, userSync Middleware) []Middleware {
	return []Middleware{authMiddleware, userSync}
}

// tenantMiddlewares extends the base chain with the tenant context
// requirement. Context-optional routes use baseMiddlewares instead.
func tenantMiddlewares(authMiddleware, userSync Middleware) []Middleware {
	return append(baseMiddlewares(authMiddleware, userSync), middleware.RequireTenant())
}
