package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/metrics"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/repository"
)

// BatchService manages the current issued-box batch. Boxes are appended in
// scan order and never deduplicated: scanning the same barcode twice issues
// two boxes.
type BatchService interface {
	// Scan resolves a barcode and appends the resulting box to the batch.
	Scan(ctx context.Context, barcode, scannedBy string) (model.Box, error)
	// Boxes returns a copy of the current batch in scan order.
	Boxes(ctx context.Context) model.Batch
	// Reset clears the batch and closes its persisted snapshot.
	Reset(ctx context.Context, resetBy string) error
	// Restore loads the latest open batch snapshot into memory.
	Restore(ctx context.Context) error
	// History returns closed batch snapshots, newest first.
	History(ctx context.Context, limit int) ([]repository.BatchDocument, error)
}

// BatchServiceImpl implements BatchService with an in-memory batch guarded
// by a mutex. The batches repository keeps a durable snapshot so an open
// batch survives restarts; persistence failures are logged but never block
// a scan.
type BatchServiceImpl struct {
	mu          sync.RWMutex
	batch       model.Batch
	catalog     CatalogService
	batchesRepo repository.BatchesRepositoryInterface
}

// NewBatchService creates a new batch service. The batches repository may be
// nil, in which case the batch is purely in-memory.
func NewBatchService(catalog CatalogService, batchesRepo repository.BatchesRepositoryInterface) BatchService {
	return &BatchServiceImpl{
		catalog:     catalog,
		batchesRepo: batchesRepo,
	}
}

// Scan resolves a barcode and appends the resulting box to the batch.
func (s *BatchServiceImpl) Scan(ctx context.Context, barcode, scannedBy string) (model.Box, error) {
	start := time.Now()

	box, err := s.catalog.Resolve(ctx, barcode)
	if err != nil {
		if err == ErrBoxNotFound {
			metrics.RecordScan(time.Since(start), "not_found")
		} else {
			metrics.RecordScan(time.Since(start), "error")
		}
		return model.Box{}, err
	}

	s.mu.Lock()
	s.batch = append(s.batch, box)
	snapshot := s.batch.Clone()
	s.mu.Unlock()

	metrics.RecordScan(time.Since(start), "issued")
	metrics.UpdateBatchMetrics(len(snapshot), snapshot.TotalWeight())

	s.persistSnapshot(ctx, snapshot, scannedBy)

	return box, nil
}

// Boxes returns a copy of the current batch in scan order.
func (s *BatchServiceImpl) Boxes(_ context.Context) model.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batch.Clone()
}

// Reset clears the batch and closes its persisted snapshot.
func (s *BatchServiceImpl) Reset(ctx context.Context, resetBy string) error {
	s.mu.Lock()
	s.batch = nil
	s.mu.Unlock()

	metrics.UpdateBatchMetrics(0, 0)

	if s.batchesRepo == nil {
		return nil
	}
	if err := s.batchesRepo.Close(ctx, resetBy); err != nil {
		return err
	}
	return nil
}

// Restore loads the latest open batch snapshot into memory. Called once at
// startup so an interrupted session resumes where it left off.
func (s *BatchServiceImpl) Restore(ctx context.Context) error {
	if s.batchesRepo == nil {
		return nil
	}

	doc, err := s.batchesRepo.LatestOpen(ctx)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	s.mu.Lock()
	s.batch = model.Batch(doc.Boxes).Clone()
	count := len(s.batch)
	total := s.batch.TotalWeight()
	s.mu.Unlock()

	metrics.UpdateBatchMetrics(count, total)

	log.Info().
		Int("boxes", count).
		Float64("total_weight", total).
		Msg("Restored open batch from snapshot")

	return nil
}

// History returns closed batch snapshots, newest first. With no batches
// repository there is nothing to look back on, so the history is empty.
func (s *BatchServiceImpl) History(ctx context.Context, limit int) ([]repository.BatchDocument, error) {
	if s.batchesRepo == nil {
		return nil, nil
	}
	return s.batchesRepo.History(ctx, limit)
}

// persistSnapshot writes the batch snapshot, logging failures instead of
// propagating them so scanning keeps working when MongoDB is degraded.
func (s *BatchServiceImpl) persistSnapshot(ctx context.Context, snapshot model.Batch, by string) {
	if s.batchesRepo == nil {
		return
	}
	if _, err := s.batchesRepo.SaveSnapshot(ctx, snapshot, by); err != nil {
		log.Warn().Err(err).Msg("failed to persist batch snapshot")
	}
}
