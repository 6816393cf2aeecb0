// Package http assembles the gin engine: global middleware chain, the access
// engine evaluation, and the route table for the storefront, tenant and
// admin surfaces.
package http

import (
	"github.com/gin-gonic/gin"

	"tavolo/internal/interfaces/http/middleware"
	"tavolo/internal/shared/constants"
	"tavolo/internal/shared/utils"
)

// NewRouter builds the gin engine. The access middleware runs globally after
// optional authentication, so every route goes through classification; routes
// the classifier does not recognize pass through unrestricted.
func NewRouter(c *Container) *gin.Engine {
	if c.cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidations()

	r := gin.New()
	r.Use(
		middleware.Recovery(c.log),
		middleware.Logger(c.log),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
		c.authMiddleware.OptionalAuth(),
		c.accessMiddleware.Evaluate(),
	)

	r.GET("/health", func(ctx *gin.Context) {
		utils.OKResponse(ctx, gin.H{"status": "ok"})
	})

	registerAPIRoutes(r, c)
	registerAdminRoutes(r, c)

	return r
}

func registerAPIRoutes(r *gin.Engine, c *Container) {
	api := r.Group("/api")

	api.POST("/auth/login", c.authHandler.Login)

	// Public storefront surface, addressed by slug, no authentication
	public := api.Group("/public")
	{
		public.GET("/:slug", c.publicHandler.GetStorefront)
		public.GET("/:slug/menu", c.publicHandler.GetMenu)
		public.POST("/:slug/reservations", c.publicHandler.CreateReservation)
	}

	// Plan catalog is public so the storefront can render upgrade prompts
	api.GET("/plans", c.planHandler.List)
	api.GET("/plans/minimum/:capability", c.planHandler.MinimumPlanFor)

	// Tenant surface, authenticated
	authed := api.Group("")
	authed.Use(c.authMiddleware.RequireAuth())
	{
		restaurants := authed.Group("/restaurants")
		{
			restaurants.GET("/:restaurantId", c.restaurantHandler.Get)
			restaurants.PUT("/:restaurantId", c.restaurantHandler.UpdateProfile)
			restaurants.GET("/:restaurantId/menu", c.restaurantHandler.GetMenu)
			restaurants.PUT("/:restaurantId/menu", c.restaurantHandler.UpdateMenu)
			restaurants.GET("/:restaurantId/settings", c.settingsHandler.Get)
			restaurants.PUT("/:restaurantId/settings", c.settingsHandler.Update)
			restaurants.GET("/:restaurantId/reservations", c.reservationHandler.List)
			restaurants.POST("/:restaurantId/reservations", c.reservationHandler.Create)
			restaurants.GET("/:restaurantId/subscription", c.subscriptionHandler.Get)
			restaurants.GET("/:restaurantId/entitlements", c.planHandler.Entitlements)
		}

		authed.GET("/reservations/:reservationId", c.reservationHandler.Get)
	}
}

func registerAdminRoutes(r *gin.Engine, c *Container) {
	admin := r.Group("/admin")
	admin.Use(c.authMiddleware.RequireAuth(), c.authMiddleware.RequireSuperAdmin())
	{
		admin.GET("/restaurants", c.restaurantHandler.List)
		admin.POST("/restaurants", c.restaurantHandler.Create)
		admin.GET("/restaurants/:restaurantId", c.restaurantHandler.Get)
		admin.PUT("/restaurants/:restaurantId", c.restaurantHandler.UpdateProfile)
		admin.GET("/restaurants/:restaurantId/settings", c.settingsHandler.Get)
		admin.PUT("/restaurants/:restaurantId/settings", c.settingsHandler.Update)
		admin.GET("/restaurants/:restaurantId/subscription", c.subscriptionHandler.Get)
		admin.PUT("/restaurants/:restaurantId/subscription", c.subscriptionHandler.Set)
	}
}
