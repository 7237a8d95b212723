package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/mocks"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/repository"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

// newTestHandler wires a handler over an in-memory batch service whose
// catalog resolves the given barcodes.
func newTestHandler(t *testing.T, docs map[string]*repository.BoxDocument, opts ...HandlerOption) *Handler {
	t.Helper()

	mockRepo := new(mocks.MockBoxesRepositoryInterface)
	for barcode, doc := range docs {
		mockRepo.On("FindByBarcode", mock.Anything, barcode).Return(doc, nil)
	}
	mockRepo.On("FindByBarcode", mock.Anything, mock.Anything).Return(nil, repository.ErrBoxNotFound)

	catalog := service.NewCatalogService(mockRepo, nil)
	batchService := service.NewBatchService(catalog, nil)
	return NewHandler(batchService, opts...)
}

func newTestRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.POST("/api/scan", h.Scan)
	router.GET("/api/batch", h.GetBatch)
	router.GET("/api/batch/text", h.GetBatchText)
	router.POST("/api/batch/reset", h.ResetBatch)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_ScanIssuesBox(t *testing.T) {
	h := newTestHandler(t, map[string]*repository.BoxDocument{
		"7891": {Identifier: "SM", DisplayName: "Small Box", Weight: 2.5},
	})
	router := newTestRouter(h)

	w := doJSON(router, http.MethodPost, "/api/scan", `{"barcode":"7891"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Issued struct {
				Identifier string  `json:"identifier"`
				Weight     float64 `json:"weight"`
			} `json:"issued"`
			View struct {
				Header string `json:"header"`
				Total  string `json:"total"`
				Count  int    `json:"count"`
			} `json:"view"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SM", resp.Data.Issued.Identifier)
	assert.Equal(t, 2.5, resp.Data.Issued.Weight)
	assert.Equal(t, "Issued: 1 box", resp.Data.View.Header)
	assert.Equal(t, "2.50 kg", resp.Data.View.Total)
	assert.Equal(t, 1, resp.Data.View.Count)
}

func TestHandler_ScanUnknownBarcode(t *testing.T) {
	h := newTestHandler(t, nil)
	router := newTestRouter(h)

	w := doJSON(router, http.MethodPost, "/api/scan", `{"barcode":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestHandler_ScanValidation(t *testing.T) {
	h := newTestHandler(t, nil)
	router := newTestRouter(h)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"barcode":`},
		{name: "missing barcode", body: `{}`},
		{name: "blank barcode", body: `{"barcode":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/scan", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_GetBatchEmptyState(t *testing.T) {
	h := newTestHandler(t, nil)
	router := newTestRouter(h)

	w := doJSON(router, http.MethodGet, "/api/batch", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Empty   bool   `json:"empty"`
			Message string `json:"message"`
			Header  string `json:"header"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Empty)
	assert.Equal(t, "No boxes issued yet. Scan a barcode to begin.", resp.Data.Message)
	assert.Empty(t, resp.Data.Header)
}

func TestHandler_GetBatchPreservesScanOrder(t *testing.T) {
	h := newTestHandler(t, map[string]*repository.BoxDocument{
		"a": {Identifier: "A", DisplayName: "Box A", Weight: 1},
		"b": {Identifier: "B", DisplayName: "Box B", Weight: 0.25},
	})
	router := newTestRouter(h)

	for _, barcode := range []string{"b", "a", "b"} {
		w := doJSON(router, http.MethodPost, "/api/scan", `{"barcode":"`+barcode+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/batch", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Header string `json:"header"`
			Total  string `json:"total"`
			Rows   []struct {
				Key    string `json:"key"`
				Weight string `json:"weight"`
			} `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Issued: 3 boxes", resp.Data.Header)
	assert.Equal(t, "1.50 kg", resp.Data.Total)
	require.Len(t, resp.Data.Rows, 3)
	assert.Equal(t, "B-0", resp.Data.Rows[0].Key)
	assert.Equal(t, "A-1", resp.Data.Rows[1].Key)
	assert.Equal(t, "B-2", resp.Data.Rows[2].Key)
	assert.Equal(t, "0.25 kg", resp.Data.Rows[0].Weight)
	assert.Equal(t, "1 kg", resp.Data.Rows[1].Weight)
}

func TestHandler_GetBatchText(t *testing.T) {
	h := newTestHandler(t, map[string]*repository.BoxDocument{
		"a": {Identifier: "A", DisplayName: "Box A", Weight: 1.5},
	})
	router := newTestRouter(h)

	w := doJSON(router, http.MethodGet, "/api/batch/text", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No boxes issued yet. Scan a barcode to begin.\n", w.Body.String())

	doJSON(router, http.MethodPost, "/api/scan", `{"barcode":"a"}`)

	w = doJSON(router, http.MethodGet, "/api/batch/text", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Issued: 1 box\nTotal: 1.50 kg\nBox A  1.5 kg\n", w.Body.String())
}

func TestHandler_ResetBatch(t *testing.T) {
	h := newTestHandler(t, map[string]*repository.BoxDocument{
		"a": {Identifier: "A", DisplayName: "Box A", Weight: 1},
	})
	router := newTestRouter(h)

	doJSON(router, http.MethodPost, "/api/scan", `{"barcode":"a"}`)

	w := doJSON(router, http.MethodPost, "/api/batch/reset", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Empty bool `json:"empty"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Empty)
}

func TestHandler_NameWidthOption(t *testing.T) {
	h := newTestHandler(t, map[string]*repository.BoxDocument{
		"a": {Identifier: "A", DisplayName: "A very long box name indeed", Weight: 1},
	}, WithNameWidth(10))
	router := newTestRouter(h)

	doJSON(router, http.MethodPost, "/api/scan", `{"barcode":"a"}`)

	w := doJSON(router, http.MethodGet, "/api/batch", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Rows []struct {
				DisplayName string `json:"display_name"`
			} `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Rows, 1)
	assert.Equal(t, "A very lo…", resp.Data.Rows[0].DisplayName)
}

func TestHandler_GetBatchHistory(t *testing.T) {
	mockRepo := new(mocks.MockBoxesRepositoryInterface)
	mockRepo.On("FindByBarcode", mock.Anything, mock.Anything).Return(nil, repository.ErrBoxNotFound)

	batchRepo := new(mocks.MockBatchesRepositoryInterface)
	batchRepo.On("History", mock.Anything, 20).Return([]repository.BatchDocument{
		{Closed: true, TotalWeight: 3.25, CreatedBy: "operator"},
	}, nil)

	catalog := service.NewCatalogService(mockRepo, nil)
	h := NewHandler(service.NewBatchService(catalog, batchRepo))

	router := gin.New()
	router.GET("/api/batch/history", h.GetBatchHistory)

	w := doJSON(router, http.MethodGet, "/api/batch/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), `"total_weight":3.25`)
}

func TestHandler_GetBatchHistoryWithoutRepository(t *testing.T) {
	h := newTestHandler(t, nil)

	router := gin.New()
	router.GET("/api/batch/history", h.GetBatchHistory)

	w := doJSON(router, http.MethodGet, "/api/batch/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}
