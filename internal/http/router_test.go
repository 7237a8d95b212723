package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/repository"
)

func newFullRouter(t *testing.T, cfg RouterConfig) http.Handler {
	t.Helper()
	h := newTestHandler(t, map[string]*repository.BoxDocument{
		"7891": {Identifier: "SM", DisplayName: "Small Box", Weight: 2.5},
	})
	return NewRouter(h, NewHealthHandler(), cfg)
}

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := newFullRouter(t, DefaultRouterConfig())

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "liveness", path: "/healthz", want: http.StatusOK},
		{name: "readiness", path: "/readyz", want: http.StatusOK},
		{name: "metrics", path: "/metrics", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestNewRouter_PublicBatchRoutes(t *testing.T) {
	router := newFullRouter(t, DefaultRouterConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/batch", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	router := newFullRouter(t, DefaultRouterConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRouter_RateLimitHeadersSet(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 5
	router := newFullRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/batch", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
}
