package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/wsalem/rental_ledger_app/cmd/docs"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
	"github.com/wsalem/rental_ledger_app/internal/platform/config"
)

// ErrorResponse is the generic error payload returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

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

	registerHomeRoutes(r)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Internal refresh endpoint for the scheduled rate fetch, guarded by a
	// shared secret rather than a user token.
	registerRateRefreshRoutes(r, cfg, services.Rate)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
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
	registerSettingsRoutes(v1, services.Settings, services.Rate)
	registerUnitRoutes(v1, services.Unit)
	registerTenantRoutes(v1, services.Tenant)
	registerUtilityRoutes(v1, services.Utility)
	registerInvoiceRoutes(v1, services.Invoice)
	registerPaymentRoutes(v1, services.Payment)
	registerOverviewRoutes(v1, services.Overview)
	registerBackupRoutes(v1, services.Backup)
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

// newIPRateLimiter builds an in-memory limiter from a formatted rate such as
// "5-M" (five requests per minute, per client IP).
func newIPRateLimiter(formatted string) *limiter.Limiter {
	rate, _ := limiter.NewRateFromFormatted(formatted)
	return limiter.New(memory.NewStore(), rate)
}
