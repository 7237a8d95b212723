// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/TonmoyBishwas/web-scanner-sub001/config"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/http"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Logger first, everything else logs through it.
	InitializeLogger()

	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents := InitializeServices(cfg.Cache, dbComponents)

	// Resume an interrupted scanning session before serving traffic.
	if dbComponents != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := serviceComponents.Batch.Restore(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to restore open batch snapshot")
		}
		cancel()

		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
