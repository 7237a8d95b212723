// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TonmoyBishwas/web-scanner-sub001/config"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/circuitbreaker"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/repository"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	BoxesRepo             repository.BoxesRepositoryInterface
	BatchesRepo           repository.BatchesRepositoryInterface
	LoggingService        service.LoggingService
	BoxesCircuitBreaker   *circuitbreaker.CircuitBreaker
	BatchesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
	UserRepo              repository.UserRepositoryInterface
	TokenRepo             repository.TokenRepositoryInterface
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and services built on it. Returns nil if the database is
// disabled or the connection fails; the service then runs purely in memory.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	boxesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-boxes",
	})

	batchesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-batches",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	boxesRepo := repository.NewBoxesRepository(db)
	boxesRepoWithCB := repository.NewBoxesRepositoryWithCircuitBreaker(boxesRepo, boxesCB)

	batchesRepo := repository.NewBatchesRepository(db)
	batchesRepoWithCB := repository.NewBatchesRepositoryWithCircuitBreaker(batchesRepo, batchesCB)

	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	if err := initializeDefaultCatalog(boxesRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default catalog boxes")
	}

	return &DatabaseComponents{
		DB:                    db,
		BoxesRepo:             boxesRepoWithCB,
		BatchesRepo:           batchesRepoWithCB,
		LoggingService:        loggingService,
		BoxesCircuitBreaker:   boxesCB,
		BatchesCircuitBreaker: batchesCB,
		LogsCircuitBreaker:    logsCB,
		UserRepo:              userRepo,
		TokenRepo:             tokenRepo,
	}
}

// initializeDefaultCatalog seeds the default box types when the catalog is
// empty, mirroring the in-memory fallback used when the database is disabled.
func initializeDefaultCatalog(repo repository.BoxesRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := repo.List(ctx, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, box := range service.DefaultSeedBoxes {
		if _, err := repo.Create(ctx, box.Barcode, box.Identifier, box.DisplayName, box.Weight, "system"); err != nil {
			log.Warn().Err(err).Str("barcode", box.Barcode).Msg("Failed to create default catalog box")
			continue
		}
		log.Info().Str("barcode", box.Barcode).Msg("Created default catalog box")
	}

	return nil
}
