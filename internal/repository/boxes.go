// Package repository provides data access for the box catalog.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBoxNotFound is returned when no catalog box matches the given barcode.
var ErrBoxNotFound = errors.New("box not found")

// BoxDocument represents a catalog box document.
type BoxDocument struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Barcode     string                 `bson:"barcode" json:"barcode"`
	Identifier  string                 `bson:"identifier" json:"identifier"`
	DisplayName string                 `bson:"display_name" json:"display_name"`
	Weight      float64                `bson:"weight" json:"weight"`
	Active      bool                   `bson:"active" json:"active"`
	CreatedAt   time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy   string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// BoxesRepository provides methods for box catalog operations.
type BoxesRepository struct {
	collection *mongo.Collection
}

// NewBoxesRepository creates a new box catalog repository.
func NewBoxesRepository(db *MongoDB) *BoxesRepository {
	return &BoxesRepository{
		collection: db.Boxes,
	}
}

// FindByBarcode returns the active catalog box for the given barcode.
// Returns ErrBoxNotFound when no active box matches.
func (r *BoxesRepository) FindByBarcode(ctx context.Context, barcode string) (*BoxDocument, error) {
	var doc BoxDocument
	err := r.collection.FindOne(ctx, bson.M{"barcode": barcode, "active": true}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBoxNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create inserts a new catalog box.
func (r *BoxesRepository) Create(ctx context.Context, barcode, identifier, displayName string, weight float64, createdBy string) (*BoxDocument, error) {
	doc := BoxDocument{
		ID:          primitive.NewObjectID(),
		Barcode:     barcode,
		Identifier:  identifier,
		DisplayName: displayName,
		Weight:      weight,
		Active:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		CreatedBy:   createdBy,
		Metadata:    make(map[string]interface{}),
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// Update replaces the mutable fields of an existing catalog box.
func (r *BoxesRepository) Update(ctx context.Context, id primitive.ObjectID, displayName string, weight float64, updatedBy string) (*BoxDocument, error) {
	update := bson.M{
		"$set": bson.M{
			"display_name": displayName,
			"weight":       weight,
			"updated_at":   time.Now(),
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var doc BoxDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBoxNotFound
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// Deactivate marks a catalog box as inactive so it no longer resolves on
// scan. Returns the updated document so callers can invalidate by barcode.
func (r *BoxesRepository) Deactivate(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error) {
	var doc BoxDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBoxNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns catalog boxes sorted by creation time, newest first.
func (r *BoxesRepository) List(ctx context.Context, limit int) ([]BoxDocument, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []BoxDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
