// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
)

// BoxesRepositoryInterface defines the interface for box catalog operations.
type BoxesRepositoryInterface interface {
	FindByBarcode(ctx context.Context, barcode string) (*BoxDocument, error)
	Create(ctx context.Context, barcode, identifier, displayName string, weight float64, createdBy string) (*BoxDocument, error)
	Update(ctx context.Context, id primitive.ObjectID, displayName string, weight float64, updatedBy string) (*BoxDocument, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error)
	List(ctx context.Context, limit int) ([]BoxDocument, error)
}

// BatchesRepositoryInterface defines the interface for batch snapshot operations.
type BatchesRepositoryInterface interface {
	SaveSnapshot(ctx context.Context, batch model.Batch, createdBy string) (*BatchDocument, error)
	LatestOpen(ctx context.Context) (*BatchDocument, error)
	Close(ctx context.Context, closedBy string) error
	History(ctx context.Context, limit int) ([]BatchDocument, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
