package catalog

import (
	"context"
	"fmt"

	"travel-admin/core/errs"
	"travel-admin/core/slug"
	"travel-admin/feature/catalog/models"
	"travel-admin/feature/catalog/sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes one synchronizer per parent kind.
type Service struct {
	Packages     *sync.Synchronizer[models.Package]
	Destinations *sync.Synchronizer[models.Destination]
	Blogs        *sync.Synchronizer[models.Blog]
	Testimonials *sync.Synchronizer[models.Testimonial]
	db           *gorm.DB
	logger       *zap.Logger
}

// NewService creates a catalog service over db.
func NewService(db *gorm.DB, slugger *slug.Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Packages:     sync.NewSynchronizer[models.Package](db, sync.Packages, slugger, logger),
		Destinations: sync.NewSynchronizer[models.Destination](db, sync.Destinations, slugger, logger),
		Blogs:        sync.NewSynchronizer[models.Blog](db, sync.Blogs, slugger, logger),
		Testimonials: sync.NewSynchronizer[models.Testimonial](db, sync.Testimonials, slugger, logger),
		db:           db,
		logger:       logger,
	}
}

// Get returns one entity of the named kind ("package", "destination", "blog", "testimonial").
func (s *Service) Get(ctx context.Context, kind, id string) (any, error) {
	switch kind {
	case sync.Packages.Name:
		return s.Packages.Get(ctx, id)
	case sync.Destinations.Name:
		return s.Destinations.Get(ctx, id)
	case sync.Blogs.Name:
		return s.Blogs.Get(ctx, id)
	case sync.Testimonials.Name:
		return s.Testimonials.Get(ctx, id)
	}
	return nil, unknownKind(kind)
}

// Delete removes one entity of the named kind.
func (s *Service) Delete(ctx context.Context, kind, id string) error {
	switch kind {
	case sync.Packages.Name:
		return s.Packages.Delete(ctx, id)
	case sync.Destinations.Name:
		return s.Destinations.Delete(ctx, id)
	case sync.Blogs.Name:
		return s.Blogs.Delete(ctx, id)
	case sync.Testimonials.Name:
		return s.Testimonials.Delete(ctx, id)
	}
	return unknownKind(kind)
}

// Counts returns the number of parents stored per kind.
func (s *Service) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, 4)
	for _, k := range sync.Kinds() {
		var n int64
		if err := s.db.WithContext(ctx).Model(k.Model).Count(&n).Error; err != nil {
			return nil, errs.FromStorage(k.Name+".count", err)
		}
		counts[k.Name] = n
	}
	return counts, nil
}

func unknownKind(kind string) error {
	names := make([]string, 0, 4)
	for _, k := range sync.Kinds() {
		names = append(names, k.Name)
	}
	return errs.New(errs.ValidationFailed, "catalog", "unknown kind %q, expected one of %s", kind, fmt.Sprint(names))
}
