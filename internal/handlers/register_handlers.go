package handlers

import (
	"log/slog"

	"github.com/SscSPs/coin_wallet_app/cmd/docs"
	portssvc "github.com/SscSPs/coin_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/coin_wallet_app/internal/middleware"
	"github.com/SscSPs/coin_wallet_app/internal/platform/config"
	"github.com/SscSPs/coin_wallet_app/internal/platform/metrics"
	"github.com/SscSPs/coin_wallet_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// NewEngine builds the gin engine with the global middleware chain. Only the
// configured proxies may supply the client IP through forwarding headers.
func NewEngine(cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	r := gin.New()

	// Global middleware (logging, recovery, metrics, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		middleware.CORS(),
	)

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// A nil verifyLimiter leaves the verification proxy unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	verifyLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	registerHealthRoutes(r)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Edge-function compatible path used by the mobile client
	setupFunctionRoutes(r, services, verifyLimiter)

	setupAPIV1Routes(r, cfg, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func setupFunctionRoutes(r *gin.Engine, services *portssvc.ServiceContainer, verifyLimiter *limiter.Limiter) {
	functions := r.Group("/functions/v1")
	if verifyLimiter != nil {
		functions.Use(middleware.RateLimit(verifyLimiter))
	}
	registerVerificationRoutes(functions, services.Bank)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1")

	// Public lookups
	registerCurrencyRoutes(v1, services.Currency)
	registerBankRoutes(v1, services.Bank)

	// Apply AuthMiddleware to user-specific routes
	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(posthogClient))
	registerInteractionRoutes(authed, services.Interaction, posthogClient)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
