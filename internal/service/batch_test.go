package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/mocks"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/repository"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

func catalogWithBoxes(t *testing.T, docs map[string]*repository.BoxDocument) service.CatalogService {
	t.Helper()
	mockRepo := new(mocks.MockBoxesRepositoryInterface)
	for barcode, doc := range docs {
		mockRepo.On("FindByBarcode", mock.Anything, barcode).Return(doc, nil)
	}
	mockRepo.On("FindByBarcode", mock.Anything, mock.Anything).Return(nil, repository.ErrBoxNotFound)
	return service.NewCatalogService(mockRepo, nil)
}

func TestBatchService_Scan(t *testing.T) {
	catalog := catalogWithBoxes(t, map[string]*repository.BoxDocument{
		"1234567890": {Identifier: "SM", DisplayName: "Small Box", Weight: 2.5},
	})
	batchRepo := new(mocks.MockBatchesRepositoryInterface)
	batchRepo.On("SaveSnapshot", mock.Anything, mock.Anything, mock.Anything).Return(&repository.BatchDocument{}, nil)

	svc := service.NewBatchService(catalog, batchRepo)

	box, err := svc.Scan(context.Background(), "1234567890", "operator")
	require.NoError(t, err)
	assert.Equal(t, "SM", box.Identifier)
	assert.Equal(t, 2.5, box.Weight)

	boxes := svc.Boxes(context.Background())
	require.Len(t, boxes, 1)
	assert.Equal(t, "Small Box", boxes[0].DisplayName)
	batchRepo.AssertCalled(t, "SaveSnapshot", mock.Anything, mock.Anything, "operator")
}

func TestBatchService_ScanUnknownBarcode(t *testing.T) {
	catalog := catalogWithBoxes(t, nil)
	svc := service.NewBatchService(catalog, nil)

	_, err := svc.Scan(context.Background(), "nope", "operator")
	assert.ErrorIs(t, err, service.ErrBoxNotFound)
	assert.Empty(t, svc.Boxes(context.Background()))
}

func TestBatchService_ScanPreservesOrderAndDuplicates(t *testing.T) {
	catalog := catalogWithBoxes(t, map[string]*repository.BoxDocument{
		"a": {Identifier: "A", DisplayName: "Box A", Weight: 1},
		"b": {Identifier: "B", DisplayName: "Box B", Weight: 2},
	})
	svc := service.NewBatchService(catalog, nil)

	ctx := context.Background()
	for _, barcode := range []string{"b", "a", "b"} {
		_, err := svc.Scan(ctx, barcode, "operator")
		require.NoError(t, err)
	}

	boxes := svc.Boxes(ctx)
	require.Len(t, boxes, 3)
	assert.Equal(t, "B", boxes[0].Identifier)
	assert.Equal(t, "A", boxes[1].Identifier)
	assert.Equal(t, "B", boxes[2].Identifier)
}

func TestBatchService_BoxesReturnsCopy(t *testing.T) {
	catalog := catalogWithBoxes(t, map[string]*repository.BoxDocument{
		"a": {Identifier: "A", DisplayName: "Box A", Weight: 1},
	})
	svc := service.NewBatchService(catalog, nil)

	_, err := svc.Scan(context.Background(), "a", "operator")
	require.NoError(t, err)

	boxes := svc.Boxes(context.Background())
	boxes[0].Identifier = "mutated"

	assert.Equal(t, "A", svc.Boxes(context.Background())[0].Identifier)
}

func TestBatchService_Reset(t *testing.T) {
	catalog := catalogWithBoxes(t, map[string]*repository.BoxDocument{
		"a": {Identifier: "A", DisplayName: "Box A", Weight: 1},
	})
	batchRepo := new(mocks.MockBatchesRepositoryInterface)
	batchRepo.On("SaveSnapshot", mock.Anything, mock.Anything, mock.Anything).Return(&repository.BatchDocument{}, nil)
	batchRepo.On("Close", mock.Anything, "operator").Return(nil)

	svc := service.NewBatchService(catalog, batchRepo)

	_, err := svc.Scan(context.Background(), "a", "operator")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(context.Background(), "operator"))
	assert.Empty(t, svc.Boxes(context.Background()))
	batchRepo.AssertCalled(t, "Close", mock.Anything, "operator")
}

func TestBatchService_Restore(t *testing.T) {
	catalog := catalogWithBoxes(t, nil)
	batchRepo := new(mocks.MockBatchesRepositoryInterface)
	batchRepo.On("LatestOpen", mock.Anything).Return(&repository.BatchDocument{
		Boxes: []model.Box{
			{Identifier: "A", DisplayName: "Box A", Weight: 1.5},
			{Identifier: "B", DisplayName: "Box B", Weight: 2},
		},
		CreatedAt: time.Now(),
	}, nil)

	svc := service.NewBatchService(catalog, batchRepo)
	require.NoError(t, svc.Restore(context.Background()))

	boxes := svc.Boxes(context.Background())
	require.Len(t, boxes, 2)
	assert.Equal(t, "A", boxes[0].Identifier)
}

func TestBatchService_RestoreNoOpenBatch(t *testing.T) {
	batchRepo := new(mocks.MockBatchesRepositoryInterface)
	batchRepo.On("LatestOpen", mock.Anything).Return(nil, nil)

	svc := service.NewBatchService(catalogWithBoxes(t, nil), batchRepo)
	require.NoError(t, svc.Restore(context.Background()))
	assert.Empty(t, svc.Boxes(context.Background()))
}

func TestBatchService_History(t *testing.T) {
	batchRepo := new(mocks.MockBatchesRepositoryInterface)
	batchRepo.On("History", mock.Anything, 5).Return([]repository.BatchDocument{
		{Closed: true, TotalWeight: 3.25},
		{Closed: true, TotalWeight: 1.5},
	}, nil)

	svc := service.NewBatchService(catalogWithBoxes(t, nil), batchRepo)

	docs, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.True(t, docs[0].Closed)
	assert.Equal(t, 3.25, docs[0].TotalWeight)
}

func TestBatchService_HistoryWithoutRepository(t *testing.T) {
	svc := service.NewBatchService(catalogWithBoxes(t, nil), nil)

	docs, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
