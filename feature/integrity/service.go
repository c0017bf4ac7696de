package integrity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-admin/core/reconcile"
	"travel-admin/core/storage"
	"travel-admin/feature/catalog/models"
	"travel-admin/feature/catalog/sync"
	"travel-admin/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const mediaCacheTTL = time.Minute

// Report is the combined outcome of every check. A failed check carries its error instead.
type Report struct {
	Structure      *checks.StructureReport `json:"structure,omitempty"`
	StructureError string                  `json:"structure_error,omitempty"`
	Schema         *checks.SchemaReport    `json:"schema,omitempty"`
	SchemaError    string                  `json:"schema_error,omitempty"`
	Orphans        *checks.OrphanReport    `json:"orphans,omitempty"`
	OrphansError   string                  `json:"orphans_error,omitempty"`
	Media          *reconcile.Plan         `json:"media,omitempty"`
	MediaError     string                  `json:"media_error,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	cfg    storage.Config
	db     *gorm.DB
	logger *zap.Logger
	media  *reconcile.Spec
}

// NewService creates a new integrity service. client or db may be nil; their checks then fail.
func NewService(client storage.Client, cfg storage.Config, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		cfg:    cfg,
		db:     db,
		logger: logger,
		media: &reconcile.Spec{
			Adapter:       checks.NewMediaAdapter(cfg),
			CacheTTL:      mediaCacheTTL,
			StoragePrefix: strings.Trim(cfg.UploadFolder, "/") + "/",
		},
	}
}

// Folders lists the folders that must exist in the bucket.
func (s *Service) Folders() []string {
	return []string{s.cfg.UploadFolder}
}

// CheckStructure reports missing bucket and folders.
func (s *Service) CheckStructure(ctx context.Context) (*checks.StructureReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}
	return checks.CheckStructure(ctx, s.client, s.cfg.Bucket, s.Folders())
}

// FixStructure creates what report lists as missing.
func (s *Service) FixStructure(ctx context.Context, report *checks.StructureReport) error {
	return checks.FixStructure(ctx, s.client, s.cfg.Bucket, s.cfg.Region, s.logger, report)
}

// CheckSchema compares the database with the catalog models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.All())
}

// CheckOrphans counts rows whose owner is gone, deleting them when fix is set.
func (s *Service) CheckOrphans(ctx context.Context, fix bool) (*checks.OrphanReport, error) {
	return checks.CheckOrphans(ctx, s.db, sync.Kinds(), fix)
}

// CheckMedia reconciles image URLs with uploaded objects. With purge, objects
// nothing references are deleted; broken references are only reported.
func (s *Service) CheckMedia(ctx context.Context, purge bool) (*reconcile.Plan, int, error) {
	if s.client == nil {
		return nil, 0, fmt.Errorf("storage client is not configured")
	}
	// A full check always lists afresh and refreshes the cache MediaStatus reads.
	reconcile.InvalidateCache(s.media)
	opts := reconcile.Options{DoPurge: purge, Confirmed: purge}
	plan, executed, err := reconcile.ReconcileAndApply(ctx, s.media, s.db, s.client, s.cfg.Bucket, opts)
	if err != nil {
		return plan, executed, err
	}
	if executed > 0 {
		s.logger.Info("Purged unreferenced media", zap.Int("count", executed))
	}
	return plan, executed, nil
}

// MediaStatus reports one object key, served from the cached indices when fresh.
func (s *Service) MediaStatus(ctx context.Context, key string) (*reconcile.Result, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}
	return reconcile.ReconcileOne(ctx, s.media, s.db, s.client, s.cfg.Bucket, key)
}

// RunAll runs every read-only check concurrently.
func (s *Service) RunAll(ctx context.Context) *Report {
	report := &Report{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := s.CheckStructure(gctx)
		if err != nil {
			report.StructureError = err.Error()
			return nil
		}
		report.Structure = r
		return nil
	})
	g.Go(func() error {
		r, err := s.CheckSchema()
		if err != nil {
			report.SchemaError = err.Error()
			return nil
		}
		report.Schema = r
		return nil
	})
	g.Go(func() error {
		r, err := s.CheckOrphans(gctx, false)
		if err != nil {
			report.OrphansError = err.Error()
			return nil
		}
		report.Orphans = r
		return nil
	})

	g.Go(func() error {
		plan, _, err := s.CheckMedia(gctx, false)
		if err != nil {
			report.MediaError = err.Error()
			return nil
		}
		report.Media = plan
		return nil
	})

	_ = g.Wait()
	return report
}
