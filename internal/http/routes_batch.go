package http

import (
	"github.com/gin-gonic/gin"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

// BatchRoutes handles scan, batch and catalog route registration.
type BatchRoutes struct {
	handler      *Handler
	boxesHandler *BoxesHandler
}

// NewBatchRoutes creates a new BatchRoutes instance. The catalog handler is
// omitted when no catalog service is wired, so catalog routes disappear
// rather than serve errors.
func NewBatchRoutes(handler *Handler, catalogService service.CatalogService) *BatchRoutes {
	var boxesHandler *BoxesHandler
	if catalogService != nil {
		boxesHandler = NewBoxesHandler(catalogService)
	}

	return &BatchRoutes{
		handler:      handler,
		boxesHandler: boxesHandler,
	}
}

// RegisterPublicRoutes registers batch routes without authentication.
func (r *BatchRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg)
}

// RegisterProtectedRoutes registers batch routes behind JWT authentication.
func (r *BatchRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, _ *RouterConfig) {
	r.register(protected)
}

func (r *BatchRoutes) register(rg *gin.RouterGroup) {
	rg.POST("/scan", r.handler.Scan)
	rg.GET("/batch", r.handler.GetBatch)
	rg.GET("/batch/text", r.handler.GetBatchText)
	rg.GET("/batch/history", r.handler.GetBatchHistory)
	rg.POST("/batch/reset", r.handler.ResetBatch)

	if r.boxesHandler != nil {
		rg.GET("/boxes", r.boxesHandler.ListBoxes)
		rg.POST("/boxes", r.boxesHandler.CreateBox)
		rg.PUT("/boxes/:id", r.boxesHandler.UpdateBox)
		rg.DELETE("/boxes/:id", r.boxesHandler.DeactivateBox)
	}
}

// GetHandler returns the underlying batch handler.
func (r *BatchRoutes) GetHandler() *Handler {
	return r.handler
}
