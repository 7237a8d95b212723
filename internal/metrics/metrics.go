// Package metrics provides Prometheus metrics collection for the box
// issuance service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ScansTotal tracks barcode scans by result (issued, not_found, invalid).
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "box_scans_total",
			Help: "Total number of barcode scans",
		},
		[]string{"result"},
	)

	// ScanDuration tracks end-to-end scan handling duration.
	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "box_scan_duration_seconds",
			Help:    "Barcode scan handling duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// ViewRenderDuration tracks batch view rendering duration.
	ViewRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "batch_view_render_duration_seconds",
			Help:    "Batch view rendering duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// BatchSize tracks the number of boxes in the current batch.
	BatchSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "batch_boxes",
			Help: "Number of boxes in the current batch",
		},
	)

	// BatchTotalWeight tracks the total weight of the current batch in kilograms.
	BatchTotalWeight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "batch_total_weight_kg",
			Help: "Total weight of the current batch in kilograms",
		},
	)

	// CacheOperationsTotal tracks catalog cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordScan records metrics for a barcode scan.
func RecordScan(duration time.Duration, result string) {
	ScanDuration.Observe(duration.Seconds())
	ScansTotal.WithLabelValues(result).Inc()
}

// RecordViewRender records metrics for a batch view render.
func RecordViewRender(duration time.Duration) {
	ViewRenderDuration.Observe(duration.Seconds())
}

// UpdateBatchMetrics updates the batch size and total weight gauges.
func UpdateBatchMetrics(boxes int, totalWeight float64) {
	BatchSize.Set(float64(boxes))
	BatchTotalWeight.Set(totalWeight)
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
