package reconcile

import (
	"context"
	"sort"

	"travel-admin/core/storage"

	"gorm.io/gorm"
)

// ReconcileAll builds fresh indices and returns one result per key, sorted by key.
func ReconcileAll(ctx context.Context, spec *Spec, db *gorm.DB, client storage.Client, bucket string) ([]Result, error) {
	cache, err := BuildCache(ctx, spec, db, client, bucket)
	if err != nil {
		return nil, err
	}
	return resultsFromCache(cache), nil
}

// ReconcileOne reports a single key, reusing cached indices when the spec enables caching.
func ReconcileOne(ctx context.Context, spec *Spec, db *gorm.DB, client storage.Client, bucket, key string) (*Result, error) {
	var (
		cache *Cache
		err   error
	)
	if spec.CacheTTL > 0 {
		cache, err = GetOrBuildCache(ctx, spec, db, client, bucket)
	} else {
		cache, err = BuildCache(ctx, spec, db, client, bucket)
	}
	if err != nil {
		return nil, err
	}

	result := buildResult(key, cache)
	return &result, nil
}

func resultsFromCache(cache *Cache) []Result {
	union := make(map[string]struct{}, len(cache.References)+len(cache.StorageSet))
	for key := range cache.References {
		union[key] = struct{}{}
	}
	for key := range cache.StorageSet {
		union[key] = struct{}{}
	}

	results := make([]Result, 0, len(union))
	for key := range union {
		results = append(results, buildResult(key, cache))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
	return results
}

func buildResult(key string, cache *Cache) Result {
	owners, referenced := cache.References[key]
	_, stored := cache.StorageSet[key]

	result := Result{Key: key, Referenced: referenced, Stored: stored}
	if referenced {
		result.Owners = append([]string(nil), owners...)
		sort.Strings(result.Owners)
	}
	return result
}
