package routes

// registerCampaignRoutes registers the tenant-scoped CRUD endpoints for
// clients, projects, and campaign plans. All of them require tenant context.
func registerCampaignRoutes(router Router, h Handlers, authMiddleware, userSync Middleware) {
	scoped := tenantMiddlewares(authMiddleware, userSync)

	if h.Client != nil {
		router.Group("/api/v1/clients", func(r Router) {
			r.POST("/", h.Client.Create)
			r.GET("/", h.Client.List)
			r.GET("/{client}", h.Client.Get)
			r.PUT("/{client}", h.Client.Update)
			r.DELETE("/{client}", h.Client.Delete)

			if h.Profile != nil {
				r.PUT("/{client}/profile", h.Profile.Upsert)
				r.GET("/{client}/profile", h.Profile.Get)
				r.DELETE("/{client}/profile", h.Profile.Delete)
			}
		}, scoped...)
	}

	if h.Project != nil {
		router.Group("/api/v1/projects", func(r Router) {
			r.POST("/", h.Project.Create)
			r.GET("/", h.Project.List)
			r.GET("/{project}", h.Project.Get)
			r.PUT("/{project}", h.Project.Update)
			r.DELETE("/{project}", h.Project.Delete)
		}, scoped...)
	}

	if h.Plan != nil {
		router.Group("/api/v1/plans", func(r Router) {
			r.POST("/", h.Plan.Create)
			r.GET("/", h.Plan.List)
			r.GET("/{plan}", h.Plan.Get)
			r.PUT("/{plan}", h.Plan.Update)
			r.DELETE("/{plan}", h.Plan.Delete)
		}, scoped...)
	}
}
