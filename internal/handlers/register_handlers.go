package handlers

import (
	"github.com/SscSPs/budget_forecast_app/cmd/docs"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/middleware"
	"github.com/SscSPs/budget_forecast_app/internal/platform/config"
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
	registerHealthRoutes(r)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterAPIRoutes(v1, services)
}

// RegisterAPIRoutes registers every authenticated route on rg. It panics when the
// request validators cannot be registered, since bodies could not be bound.
func RegisterAPIRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	if err := RegisterValidators(); err != nil {
		panic(err)
	}

	registerOrganizationRoutes(rg, services.Organization)

	org := rg.Group("/organizations/:org_id")
	registerCategoryRoutes(org, services.Registry)
	registerLineItemRoutes(org, services.Registry)

	budget := org.Group("/budget/:year")
	registerBudgetDataRoutes(budget, services.BudgetData)
	registerVersionRoutes(budget, services.Version)
	registerActualsRoutes(budget, services.Actuals)
	registerReportRoutes(budget, services.Report)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
