package handlers

import (
	"github.com/harvestive/harvestive-backend/cmd/docs"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/middleware"
	"github.com/harvestive/harvestive-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Public catalogue routes: plans and enabled payment rails
	registerPublicRoutes(r, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerPublicRoutes exposes the unauthenticated catalogue endpoints.
func registerPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	pub := r.Group("/api/v1")

	ih := newInvestmentHandler(services.Investment)
	pub.GET("/plans", ih.listPlans)

	mh := newMethodHandler(services.Method)
	pub.GET("/methods/deposit", mh.listDepositMethods)
	pub.GET("/methods/withdraw", mh.listWithdrawMethods)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User)
	RegisterInvestmentRoutes(v1, services.Investment)
	registerFundingRoutes(v1, services.Funding)

	// Admin routes sit under the same auth group with an extra access check
	registerAdminRoutes(v1, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
