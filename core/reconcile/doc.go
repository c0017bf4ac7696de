// Package reconcile compares two sources of truth for stored media: the object
// keys the database references and the objects actually present in storage.
//
// # Architecture
//
// 1. Engine: builds the union of keys from both sources and flags, per key,
//    whether it is referenced and whether it is stored.
//
// 2. Adapter: knows where references live in the database and how a stored
//    object maps to a key. The integrity feature supplies the catalog adapter.
//
// 3. Cache: TTL-based indices with stampede protection, so targeted lookups
//    do not list the bucket each time.
//
// 4. Plan: turns results into actions. Only unreferenced storage objects are
//    ever purged; a reference to a missing object is reported, never rewritten.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter:       checks.NewMediaAdapter(cfg),
//	    StoragePrefix: cfg.UploadFolder + "/",
//	}
//
//	plan, err := reconcile.ReconcileWithPlan(ctx, spec, db, client, cfg.Bucket, reconcile.Options{DoPurge: true})
//	executed, err := reconcile.ApplyPlan(ctx, client, cfg.Bucket, plan, reconcile.Options{DoPurge: true, Confirmed: true})
package reconcile
