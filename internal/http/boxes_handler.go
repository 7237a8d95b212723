package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/dto"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/i18n"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

// BoxesHandler provides HTTP handlers for catalog management routes.
type BoxesHandler struct {
	catalog service.CatalogService
}

// NewBoxesHandler creates a new BoxesHandler instance.
func NewBoxesHandler(catalog service.CatalogService) *BoxesHandler {
	return &BoxesHandler{catalog: catalog}
}

// ListBoxes handles GET /api/boxes requests.
//
// @Summary      List catalog boxes
// @Description  Returns the active catalog boxes, newest first. The optional limit query parameter caps the result size.
// @Tags         Catalog
// @Produce      json
// @Param        limit query int false "Maximum number of boxes to return" default(100)
// @Success      200 {object} dto.SuccessResponse "Catalog boxes"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [get]
func (h *BoxesHandler) ListBoxes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	boxes, err := h.catalog.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{
		"boxes": boxes,
		"count": len(boxes),
	})
}

// CreateBox handles POST /api/boxes requests.
//
// @Summary      Register a catalog box
// @Description  Adds a box type to the catalog. Weight and display name are validated here; the rendering layer displays whatever the catalog holds.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoxRequest true "Box to register"
// @Success      201 {object} dto.SuccessResponse "Box registered"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      409 {object} dto.ErrorResponse "Conflict - barcode already registered"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [post]
func (h *BoxesHandler) CreateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateBoxRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationBox, err)
		return
	}

	barcode := req.Barcode
	if barcode == "" {
		barcode = req.Identifier
	}

	auditLog(c, "box_create", "Catalog box registered", map[string]interface{}{
		"barcode":    barcode,
		"identifier": req.Identifier,
	})

	doc, err := h.catalog.Create(c.Request.Context(), barcode, req.Identifier, req.DisplayName, req.Weight, req.CreatedBy)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(doc)
}

// UpdateBox handles PUT /api/boxes/:id requests.
//
// @Summary      Update a catalog box
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Box document ID"
// @Param        request body dto.UpdateBoxRequest true "Updated fields"
// @Success      200 {object} dto.SuccessResponse "Box updated"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown box"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes/{id} [put]
func (h *BoxesHandler) UpdateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateBoxRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationBox, err)
		return
	}

	auditLog(c, "box_update", "Catalog box updated", map[string]interface{}{
		"box_id": id.Hex(),
	})

	doc, err := h.catalog.Update(c.Request.Context(), id, req.DisplayName, req.Weight, req.UpdatedBy)
	if err != nil {
		if err == service.ErrBoxNotFound {
			builder.Error(http.StatusNotFound, i18n.ErrKeyBoxNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(doc)
}

// DeactivateBox handles DELETE /api/boxes/:id requests.
//
// @Summary      Retire a catalog box
// @Description  Marks the box inactive so its barcode no longer resolves on scan. Already issued boxes stay in the batch.
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Box document ID"
// @Success      200 {object} dto.SuccessResponse "Box retired"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid box ID"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown box"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes/{id} [delete]
func (h *BoxesHandler) DeactivateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	auditLog(c, "box_deactivate", "Catalog box retired", map[string]interface{}{
		"box_id": id.Hex(),
	})

	if err := h.catalog.Deactivate(c.Request.Context(), id); err != nil {
		if err == service.ErrBoxNotFound {
			builder.Error(http.StatusNotFound, i18n.ErrKeyBoxNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{"deactivated": true})
}
