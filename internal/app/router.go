// Package app provides router configuration.
package app

import (
	"context"

	"github.com/TonmoyBishwas/web-scanner-sub001/config"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/http"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(serviceComponents.Batch, http.WithNameWidth(cfg.View.NameWidth))
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
				return db.HealthCheck(context.Background())
			}))
		}
		if dbComponents.BoxesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_boxes", dbComponents.BoxesCircuitBreaker)
		}
		if dbComponents.BatchesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_batches", dbComponents.BatchesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	var authService service.AuthService
	if cfg.Auth.Enabled && dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	var catalogService service.CatalogService
	if dbComponents != nil {
		catalogService = serviceComponents.Catalog
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		CatalogService:    catalogService,
		AuthService:       authService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
