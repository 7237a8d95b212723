package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/dto"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/i18n"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/metrics"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/middleware"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/view"
)

// Handler provides HTTP handlers for the scanning and batch list routes.
type Handler struct {
	batchService service.BatchService
	renderer     *view.BoxListView
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithNameWidth sets the display width past which item names are truncated.
func WithNameWidth(width int) HandlerOption {
	return func(h *Handler) {
		h.renderer = view.New(view.WithNameWidth(width))
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(batchService service.BatchService, opts ...HandlerOption) *Handler {
	h := &Handler{
		batchService: batchService,
		renderer:     view.New(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// scannedBy returns the acting operator for audit purposes: the
// authenticated user's email when present, otherwise the client IP.
func scannedBy(c *gin.Context) string {
	if email, exists := c.Get("user_email"); exists {
		if s, ok := email.(string); ok && s != "" {
			return s
		}
	}
	return c.ClientIP()
}

// auditLog emits an async audit entry when a logging service is wired.
func auditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// render produces the list view for the current batch, recording render
// latency. The view recomputes the aggregate on every call.
func (h *Handler) render(c *gin.Context) view.ListView {
	start := time.Now()
	lv := h.renderer.Render(h.batchService.Boxes(c.Request.Context()))
	metrics.RecordViewRender(time.Since(start))
	return lv
}

// Scan handles POST /api/scan requests.
//
// @Summary      Issue a box from a scanned barcode
// @Description  Resolves the scanned barcode against the catalog, appends the box to the current batch and returns the updated rendered list. Duplicate barcodes issue distinct boxes. Supports idempotency via Idempotency-Key header.
// @Tags         Batch
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ScanRequest true "Scanned barcode"
// @Success      200 {object} dto.SuccessResponse "Box issued"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found - no catalog box answers to the barcode"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/scan [post]
func (h *Handler) Scan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationBarcode, err)
		return
	}

	auditLog(c, "scan", "Barcode scanned", map[string]interface{}{
		"barcode": req.Barcode,
	})

	box, err := h.batchService.Scan(c.Request.Context(), req.Barcode, scannedBy(c))
	if err != nil {
		if err == service.ErrBoxNotFound {
			builder.Error(http.StatusNotFound, i18n.ErrKeyBoxNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{
		"issued": box,
		"view":   h.render(c),
	})
}

// GetBatch handles GET /api/batch requests.
//
// @Summary      Rendered box list
// @Description  Returns the rendered list for the current batch: the empty-state message when nothing has been issued, otherwise a header, a two-decimal total and one row per box in issuance order.
// @Tags         Batch
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=view.ListView} "Rendered list"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Security     BearerAuth
// @Router       /api/batch [get]
func (h *Handler) GetBatch(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.render(c))
}

// GetBatchText handles GET /api/batch/text requests, returning the same
// view as plain text for terminal consumers.
//
// @Summary      Rendered box list as plain text
// @Tags         Batch
// @Produce      plain
// @Success      200 {string} string "Rendered list, one row per line"
// @Security     BearerAuth
// @Router       /api/batch/text [get]
func (h *Handler) GetBatchText(c *gin.Context) {
	start := time.Now()
	text := h.renderer.RenderText(h.batchService.Boxes(c.Request.Context()))
	metrics.RecordViewRender(time.Since(start))
	c.String(http.StatusOK, text)
}

// GetBatchHistory handles GET /api/batch/history requests.
//
// @Summary      Closed batch snapshots
// @Description  Returns previously reset batches, newest first. The optional limit query parameter caps the result size.
// @Tags         Batch
// @Produce      json
// @Param        limit query int false "Maximum number of batches to return" default(20)
// @Success      200 {object} dto.SuccessResponse "Closed batches"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/batch/history [get]
func (h *Handler) GetBatchHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	batches, err := h.batchService.History(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{
		"batches": batches,
		"count":   len(batches),
	})
}

// ResetBatch handles POST /api/batch/reset requests.
//
// @Summary      Reset the current batch
// @Description  Clears the in-memory batch and closes its persisted snapshot. The next render shows the empty-state message.
// @Tags         Batch
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Batch cleared"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/batch/reset [post]
func (h *Handler) ResetBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	auditLog(c, "batch_reset", "Batch reset requested", nil)

	if err := h.batchService.Reset(c.Request.Context(), scannedBy(c)); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(h.render(c))
}
