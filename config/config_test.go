package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 32, cfg.View.NameWidth)
	assert.Equal(t, 1000, cfg.Cache.Size)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "box_issuance", cfg.Database.DatabaseName)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VIEW_NAME_WIDTH", "16")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "key1, key2")
	t.Setenv("MONGODB_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 16, cfg.View.NameWidth)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.Auth.Enabled)
	assert.True(t, cfg.Auth.APIKeys["key1"])
	assert.True(t, cfg.Auth.APIKeys["key2"])
	assert.True(t, cfg.Database.Enabled)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("CACHE_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestParseCORSOrigins(t *testing.T) {
	origins := parseCORSOrigins("https://app.example.com, https://admin.example.com")
	assert.Contains(t, origins, "http://localhost:3000")
	assert.Contains(t, origins, "https://app.example.com")
	assert.Contains(t, origins, "https://admin.example.com")
}
