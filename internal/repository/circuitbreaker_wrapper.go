// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/circuitbreaker"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
)

// BoxesRepositoryWithCircuitBreaker wraps BoxesRepository with circuit breaker protection.
type BoxesRepositoryWithCircuitBreaker struct {
	repo           *BoxesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBoxesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBoxesRepositoryWithCircuitBreaker(repo *BoxesRepository, cb *circuitbreaker.CircuitBreaker) *BoxesRepositoryWithCircuitBreaker {
	return &BoxesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByBarcode resolves a barcode with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) FindByBarcode(ctx context.Context, barcode string) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByBarcode(ctx, barcode)
		return cbErr
	})
	return result, err
}

// Create inserts a catalog box with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) Create(ctx context.Context, barcode, identifier, displayName string, weight float64, createdBy string) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, barcode, identifier, displayName, weight, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates a catalog box with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, displayName string, weight float64, updatedBy string) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, displayName, weight, updatedBy)
		return cbErr
	})
	return result, err
}

// Deactivate deactivates a catalog box with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) Deactivate(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Deactivate(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns catalog boxes with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BoxDocument, error) {
	var result []BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BoxesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// BatchesRepositoryWithCircuitBreaker wraps BatchesRepository with circuit breaker protection.
type BatchesRepositoryWithCircuitBreaker struct {
	repo           *BatchesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBatchesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBatchesRepositoryWithCircuitBreaker(repo *BatchesRepository, cb *circuitbreaker.CircuitBreaker) *BatchesRepositoryWithCircuitBreaker {
	return &BatchesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// SaveSnapshot persists a batch snapshot with circuit breaker protection.
// If the circuit is open, the snapshot is skipped (the in-memory batch
// remains authoritative).
func (r *BatchesRepositoryWithCircuitBreaker) SaveSnapshot(ctx context.Context, batch model.Batch, createdBy string) (*BatchDocument, error) {
	var result *BatchDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.SaveSnapshot(ctx, batch, createdBy)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// LatestOpen returns the current open batch snapshot with circuit breaker protection.
func (r *BatchesRepositoryWithCircuitBreaker) LatestOpen(ctx context.Context) (*BatchDocument, error) {
	var result *BatchDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.LatestOpen(ctx)
		return cbErr
	})
	return result, err
}

// Close closes the open batch with circuit breaker protection.
func (r *BatchesRepositoryWithCircuitBreaker) Close(ctx context.Context, closedBy string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Close(ctx, closedBy)
	})
}

// History returns closed batch snapshots with circuit breaker protection.
func (r *BatchesRepositoryWithCircuitBreaker) History(ctx context.Context, limit int) ([]BatchDocument, error) {
	var result []BatchDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.History(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BatchesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
