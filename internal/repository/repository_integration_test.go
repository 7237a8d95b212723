//go:build integration

package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/repository"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func newTestDB(t *testing.T) *repository.MongoDB {
	t.Helper()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	})
	return db
}

func TestIntegration_BoxesRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBoxesRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "BOX-S", "S", "Small Box", 0.5, "tester")
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	found, err := repo.FindByBarcode(ctx, "BOX-S")
	require.NoError(t, err)
	assert.Equal(t, "Small Box", found.DisplayName)
	assert.Equal(t, 0.5, found.Weight)
	assert.True(t, found.Active)

	_, err = repo.FindByBarcode(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrBoxNotFound)

	updated, err := repo.Update(ctx, created.ID, "Small Box v2", 0.6, "tester")
	require.NoError(t, err)
	assert.Equal(t, "Small Box v2", updated.DisplayName)

	deactivated, err := repo.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "BOX-S", deactivated.Barcode)
	assert.False(t, deactivated.Active)

	_, err = repo.FindByBarcode(ctx, "BOX-S")
	assert.ErrorIs(t, err, repository.ErrBoxNotFound)
}

func TestIntegration_BoxesRepository_DuplicateBarcode(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBoxesRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "BOX-M", "M", "Medium Box", 1.2, "tester")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "BOX-M", "M2", "Medium Box Again", 1.3, "tester")
	assert.True(t, mongo.IsDuplicateKeyError(err))
}

func TestIntegration_BatchesRepository_SnapshotLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBatchesRepository(db)
	ctx := context.Background()

	open, err := repo.LatestOpen(ctx)
	require.NoError(t, err)
	assert.Nil(t, open)

	batch := model.Batch{
		{Identifier: "A", DisplayName: "Box A", Weight: 1.5},
		{Identifier: "B", DisplayName: "Box B", Weight: 0.25},
	}
	_, err = repo.SaveSnapshot(ctx, batch, "tester")
	require.NoError(t, err)

	// A second snapshot replaces the open document rather than adding one.
	batch = append(batch, model.Box{Identifier: "A", DisplayName: "Box A", Weight: 1.5})
	_, err = repo.SaveSnapshot(ctx, batch, "tester")
	require.NoError(t, err)

	open, err = repo.LatestOpen(ctx)
	require.NoError(t, err)
	require.NotNil(t, open)
	require.Len(t, open.Boxes, 3)
	assert.Equal(t, "A", open.Boxes[0].Identifier)
	assert.InDelta(t, 3.25, open.TotalWeight, 1e-9)

	require.NoError(t, repo.Close(ctx, "tester"))

	open, err = repo.LatestOpen(ctx)
	require.NoError(t, err)
	assert.Nil(t, open)

	history, err := repo.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Closed)
}
