package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/repository"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service/cache"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrBoxNotFound is returned when a barcode matches no catalog box.
	ErrBoxNotFound = repository.ErrBoxNotFound
)

// SeedBox describes a catalog box available without a database. A fresh
// install seeds these into MongoDB; with the database disabled they back
// the catalog directly.
type SeedBox struct {
	Barcode     string
	Identifier  string
	DisplayName string
	Weight      float64
}

// DefaultSeedBoxes is the built-in catalog used until an operator registers
// real box types.
var DefaultSeedBoxes = []SeedBox{
	{Barcode: "BOX-S", Identifier: "S", DisplayName: "Small Box", Weight: 0.5},
	{Barcode: "BOX-M", Identifier: "M", DisplayName: "Medium Box", Weight: 1.2},
	{Barcode: "BOX-L", Identifier: "L", DisplayName: "Large Box", Weight: 2.5},
}

// CatalogService resolves barcodes to catalog boxes and manages the catalog.
type CatalogService interface {
	// Resolve returns the box for the given barcode, consulting the cache first.
	Resolve(ctx context.Context, barcode string) (model.Box, error)
	// Create adds a new box to the catalog and invalidates its cache entry.
	Create(ctx context.Context, barcode, identifier, displayName string, weight float64, createdBy string) (*repository.BoxDocument, error)
	// Update replaces the mutable fields of a catalog box.
	Update(ctx context.Context, id primitive.ObjectID, displayName string, weight float64, updatedBy string) (*repository.BoxDocument, error)
	// Deactivate retires a catalog box so it no longer resolves on scan.
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	// List returns the active catalog boxes.
	List(ctx context.Context, limit int) ([]repository.BoxDocument, error)
}

// CatalogServiceImpl implements CatalogService with a read-through cache in
// front of the boxes repository. With no repository it serves the seed
// catalog read-only.
type CatalogServiceImpl struct {
	boxesRepo repository.BoxesRepositoryInterface
	cache     cache.Cache
	seed      map[string]model.Box
	seedDocs  []repository.BoxDocument
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithSeedBoxes installs an in-memory catalog used when no repository is
// configured. Resolve and List work against it; mutations still require a
// repository.
func WithSeedBoxes(boxes []SeedBox) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.seed = make(map[string]model.Box, len(boxes))
		s.seedDocs = make([]repository.BoxDocument, 0, len(boxes))
		for _, b := range boxes {
			s.seed[b.Barcode] = model.Box{
				Identifier:  b.Identifier,
				DisplayName: b.DisplayName,
				Weight:      b.Weight,
			}
			s.seedDocs = append(s.seedDocs, repository.BoxDocument{
				ID:          primitive.NewObjectID(),
				Barcode:     b.Barcode,
				Identifier:  b.Identifier,
				DisplayName: b.DisplayName,
				Weight:      b.Weight,
				Active:      true,
			})
		}
	}
}

// NewCatalogService creates a new catalog service. The cache may be nil, in
// which case every resolve hits the repository.
func NewCatalogService(boxesRepo repository.BoxesRepositoryInterface, c cache.Cache, opts ...CatalogOption) CatalogService {
	s := &CatalogServiceImpl{
		boxesRepo: boxesRepo,
		cache:     c,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Resolve returns the box for the given barcode, consulting the cache first.
func (s *CatalogServiceImpl) Resolve(ctx context.Context, barcode string) (model.Box, error) {
	if s.boxesRepo == nil {
		if s.seed == nil {
			return model.Box{}, ErrRepositoryNotConfigured
		}
		box, ok := s.seed[barcode]
		if !ok {
			return model.Box{}, ErrBoxNotFound
		}
		return box, nil
	}

	if s.cache != nil {
		if box, ok := s.cache.Get(barcode); ok {
			return box, nil
		}
	}

	doc, err := s.boxesRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return model.Box{}, err
	}

	box := model.Box{
		Identifier:  doc.Identifier,
		DisplayName: doc.DisplayName,
		Weight:      doc.Weight,
	}

	if s.cache != nil {
		s.cache.Set(barcode, box)
	}

	return box, nil
}

// Create adds a new box to the catalog and invalidates its cache entry.
func (s *CatalogServiceImpl) Create(ctx context.Context, barcode, identifier, displayName string, weight float64, createdBy string) (*repository.BoxDocument, error) {
	if s.boxesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.boxesRepo.Create(ctx, barcode, identifier, displayName, weight, createdBy)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(barcode)
	}

	return doc, nil
}

// Update replaces the mutable fields of a catalog box and invalidates its
// cache entry so the next scan resolves fresh data. The updated document
// carries the barcode, so invalidation never depends on the caller.
func (s *CatalogServiceImpl) Update(ctx context.Context, id primitive.ObjectID, displayName string, weight float64, updatedBy string) (*repository.BoxDocument, error) {
	if s.boxesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.boxesRepo.Update(ctx, id, displayName, weight, updatedBy)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(doc.Barcode)
	}

	return doc, nil
}

// Deactivate retires a catalog box and invalidates its cache entry so the
// next scan of its barcode misses.
func (s *CatalogServiceImpl) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	if s.boxesRepo == nil {
		return ErrRepositoryNotConfigured
	}

	doc, err := s.boxesRepo.Deactivate(ctx, id)
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(doc.Barcode)
	}

	return nil
}

// List returns the active catalog boxes.
func (s *CatalogServiceImpl) List(ctx context.Context, limit int) ([]repository.BoxDocument, error) {
	if s.boxesRepo == nil {
		if s.seedDocs == nil {
			return nil, ErrRepositoryNotConfigured
		}
		docs := make([]repository.BoxDocument, len(s.seedDocs))
		copy(docs, s.seedDocs)
		if limit > 0 && limit < len(docs) {
			docs = docs[:limit]
		}
		return docs, nil
	}
	return s.boxesRepo.List(ctx, limit)
}
