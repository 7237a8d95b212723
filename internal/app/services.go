// Package app provides service initialization.
package app

import (
	"github.com/TonmoyBishwas/web-scanner-sub001/config"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/repository"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service/cache"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Catalog service.CatalogService
	Batch   service.BatchService
	Cache   cache.Cache
}

// InitializeServices wires the catalog and batch services. With no database
// components the catalog falls back to the built-in seed boxes, so scanning
// keeps working in-memory.
func InitializeServices(cfg config.CacheConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	var boxesRepo repository.BoxesRepositoryInterface
	var batchesRepo repository.BatchesRepositoryInterface
	var opts []service.CatalogOption
	if dbComponents != nil {
		boxesRepo = dbComponents.BoxesRepo
		batchesRepo = dbComponents.BatchesRepo
	} else {
		opts = append(opts, service.WithSeedBoxes(service.DefaultSeedBoxes))
	}

	var catalogCache cache.Cache
	if cfg.Size > 0 {
		catalogCache = service.NewShardedCache(cfg.Size, cfg.TTL, 0)
	}

	catalog := service.NewCatalogService(boxesRepo, catalogCache, opts...)
	batch := service.NewBatchService(catalog, batchesRepo)

	return &ServiceComponents{
		Catalog: catalog,
		Batch:   batch,
		Cache:   catalogCache,
	}
}
