package cache

import "github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"

// Cache defines the interface for catalog cache operations, keyed by barcode.
type Cache interface {
	Get(barcode string) (model.Box, bool)
	Set(barcode string, value model.Box)
	Invalidate(barcode string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
