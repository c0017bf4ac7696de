package checks

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"travel-admin/core/reconcile"
	"travel-admin/core/storage"
	"travel-admin/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// mediaColumn is one column holding an image URL, with the column naming its owner.
type mediaColumn struct {
	model  any
	table  string
	owner  string
	column string
}

var mediaColumns = []mediaColumn{
	{&models.Package{}, "packages", "id", "image"},
	{&models.Destination{}, "destinations", "id", "image"},
	{&models.Blog{}, "blogs", "id", "thumbnail"},
	{&models.BlogImage{}, "blogs", "blog_id", "url"},
	{&models.Testimonial{}, "testimonials", "id", "image"},
}

// MediaAdapter reconciles catalog image URLs against uploaded objects.
type MediaAdapter struct {
	cfg storage.Config
}

var _ reconcile.Adapter = (*MediaAdapter)(nil)

// NewMediaAdapter creates an adapter resolving URLs against cfg's public bucket URL.
func NewMediaAdapter(cfg storage.Config) *MediaAdapter {
	return &MediaAdapter{cfg: cfg}
}

func (a *MediaAdapter) Name() string { return "media" }

// LoadReferences scans every image column once.
func (a *MediaAdapter) LoadReferences(ctx context.Context, db *gorm.DB) (map[string][]string, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	refs := make(map[string][]string)
	for _, col := range mediaColumns {
		var rows []struct {
			Owner string
			URL   string
		}
		err := db.WithContext(ctx).Model(col.model).
			Select(fmt.Sprintf("%s AS owner, %s AS url", col.owner, col.column)).
			Where(fmt.Sprintf("%s IS NOT NULL AND %s <> ''", col.column, col.column)).
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to read %s.%s: %w", col.table, col.column, err)
		}

		for _, row := range rows {
			key, ok := a.ObjectKey(row.URL)
			if !ok {
				continue
			}
			owner := col.table + ":" + row.Owner
			if !slices.Contains(refs[key], owner) {
				refs[key] = append(refs[key], owner)
			}
		}
	}
	return refs, nil
}

// LoadStorageSet lists the upload folder recursively, skipping folder markers.
func (a *MediaAdapter) LoadStorageSet(ctx context.Context, client storage.Client, bucket, prefix string) (map[string]struct{}, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}

	set := make(map[string]struct{})
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		set[obj.Key] = struct{}{}
	}
	return set, nil
}

// ObjectKey maps a public URL to its object name. URLs outside the bucket are not ours.
func (a *MediaAdapter) ObjectKey(url string) (string, bool) {
	base := a.cfg.ObjectURL("")
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	return key, key != ""
}
