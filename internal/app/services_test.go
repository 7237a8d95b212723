//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonmoyBishwas/web-scanner-sub001/config"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

func TestInitializeServices_WithoutDatabase(t *testing.T) {
	components := InitializeServices(config.CacheConfig{Size: 100, TTL: time.Minute}, nil)
	require.NotNil(t, components)
	require.NotNil(t, components.Catalog)
	require.NotNil(t, components.Batch)
	require.NotNil(t, components.Cache)
	defer components.Cache.Stop()

	// With no repositories the seed catalog keeps scanning functional.
	box, err := components.Batch.Scan(context.Background(), "BOX-S", "tester")
	require.NoError(t, err)
	assert.Equal(t, "Small Box", box.DisplayName)
	assert.Equal(t, 0.5, box.Weight)

	_, err = components.Batch.Scan(context.Background(), "unknown", "tester")
	assert.ErrorIs(t, err, service.ErrBoxNotFound)

	assert.Len(t, components.Batch.Boxes(context.Background()), 1)

	docs, err := components.Catalog.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, docs, len(service.DefaultSeedBoxes))
}

func TestInitializeServices_CacheDisabled(t *testing.T) {
	components := InitializeServices(config.CacheConfig{Size: 0}, nil)
	require.NotNil(t, components)
	assert.Nil(t, components.Cache)
}
