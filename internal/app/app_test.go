//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonmoyBishwas/web-scanner-sub001/config"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "default config without database",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				View: config.ViewConfig{NameWidth: 32},
				Cache: config.CacheConfig{
					Size: 1000,
					TTL:  5 * time.Minute,
				},
			},
		},
		{
			name: "api key auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				View:   config.ViewConfig{NameWidth: 32},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			require.NotNil(t, router)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestInitializeApp_BatchEndpointServesEmptyState(t *testing.T) {
	router := InitializeApp(config.Config{
		Server: config.ServerConfig{Port: "8080"},
		View:   config.ViewConfig{NameWidth: 32},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/batch", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No boxes issued yet. Scan a barcode to begin.")
}
