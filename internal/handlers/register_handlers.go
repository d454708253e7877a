package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/kshitijs/currency_exchange_app/internal/core/ports/services"
	"github.com/kshitijs/currency_exchange_app/internal/middleware"
	"github.com/kshitijs/currency_exchange_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies through
// the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public API: registration, token issue/refresh and the currency catalog.
	api := r.Group("/api")
	registerAuthRoutes(api, services.User, services.Token)
	registerCurrencyRoutes(api, services.Currency)

	// Protected API: everything below requires a valid bearer token.
	protected := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))
	registerConversionRoutes(protected, services.Conversion, services.Transaction)
	registerTransactionRoutes(protected, services.Transaction)
	registerPreferenceRoutes(protected, services.Preference)
}
