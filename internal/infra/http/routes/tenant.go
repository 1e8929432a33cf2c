package routes

import (
	"github.com/campaignhub/api/internal/infra/http/handler"
	"github.com/campaignhub/api/internal/infra/http/middleware"
)

// registerTenantRoutes registers agency, member, and invitation endpoints.
//
// Agency creation and invitation acceptance are context-optional: the caller
// typically has no tenant context yet. Member and invitation listing require
// it.
func registerTenantRoutes(
	router Router,
	h *handler.TenantHandler,
	authMiddleware, userSync Middleware,
) {
	base := baseMiddlewares(authMiddleware, userSync)

	router.Group("/api/v1/agencies", func(r Router) {
		r.POST("/", h.CreateAgency)
		r.GET("/{agency}", h.GetAgency)
	}, base...)

	router.Group("/api/v1/invitations", func(r Router) {
		r.POST("/", h.CreateInvitation)
		r.POST("/accept", h.AcceptInvitation)
		r.GET("/", h.ListInvitations, middleware.RequireTenant())
	}, base...)

	router.GET("/api/v1/members", h.ListMembers,
		tenantMiddlewares(authMiddleware, userSync)...)
}
