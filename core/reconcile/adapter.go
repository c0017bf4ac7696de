package reconcile

import (
	"context"

	"travel-admin/core/storage"

	"gorm.io/gorm"
)

// Adapter defines where each source keeps its keys.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "media").
	Name() string

	// LoadReferences returns every key the database points at, mapped to the
	// referencing rows. References outside the managed bucket are skipped.
	LoadReferences(ctx context.Context, db *gorm.DB) (map[string][]string, error)

	// LoadStorageSet lists every object under prefix and returns its keys.
	// Implementations should use one paginated listing, not per-key HEAD calls.
	LoadStorageSet(ctx context.Context, client storage.Client, bucket, prefix string) (map[string]struct{}, error)
}
