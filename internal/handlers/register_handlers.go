package handlers

import (
	"github.com/SscSPs/invoice_normalizer_app/cmd/docs"
	portssvc "github.com/SscSPs/invoice_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_normalizer_app/internal/platform/config"
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
	r.GET("/", getHome)
	r.GET("/health", getHealth)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	RegisterInvoiceRoutes(v1, services.Normalizer)
	RegisterRateRoutes(v1, services.Conversion)
	RegisterIdentifierRoutes(v1, services.Identifier)
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
