// Package repository provides data access for batch snapshots.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
)

// BatchDocument is a persisted snapshot of an issued-box batch.
type BatchDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Boxes       []model.Box        `bson:"boxes" json:"boxes"`
	TotalWeight float64            `bson:"total_weight" json:"total_weight"`
	Closed      bool               `bson:"closed" json:"closed"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy   string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// BatchesRepository persists batch snapshots.
type BatchesRepository struct {
	collection *mongo.Collection
}

// NewBatchesRepository creates a new batches repository.
func NewBatchesRepository(db *MongoDB) *BatchesRepository {
	return &BatchesRepository{
		collection: db.Batches,
	}
}

// SaveSnapshot upserts the open batch snapshot, replacing its box list.
// A new document is created when no open batch exists.
func (r *BatchesRepository) SaveSnapshot(ctx context.Context, batch model.Batch, createdBy string) (*BatchDocument, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"boxes":        batch,
			"total_weight": batch.TotalWeight(),
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"closed":     false,
			"created_at": now,
			"created_by": createdBy,
		},
	}

	var doc BatchDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"closed": false},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// LatestOpen returns the current open batch snapshot, or nil when none exists.
func (r *BatchesRepository) LatestOpen(ctx context.Context) (*BatchDocument, error) {
	var doc BatchDocument
	err := r.collection.FindOne(
		ctx,
		bson.M{"closed": false},
		options.FindOne().SetSort(bson.M{"created_at": -1}),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Close marks the open batch as closed, recording its final contents.
// Called when the operator resets the batch to start a new one.
func (r *BatchesRepository) Close(ctx context.Context, closedBy string) error {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"closed": false},
		bson.M{"$set": bson.M{
			"closed":     true,
			"updated_at": time.Now(),
			"closed_by":  closedBy,
		}},
	)
	return err
}

// History returns closed batch snapshots, newest first.
func (r *BatchesRepository) History(ctx context.Context, limit int) ([]BatchDocument, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"closed": true}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []BatchDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
