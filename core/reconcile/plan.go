package reconcile

import (
	"context"
	"fmt"

	"travel-admin/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// ReconcileWithPlan reconciles and returns the results with planned actions.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, db *gorm.DB, client storage.Client, bucket string, opts Options) (*Plan, error) {
	cache, err := GetOrBuildCache(ctx, spec, db, client, bucket)
	if err != nil {
		return nil, err
	}

	results := resultsFromCache(cache)
	summary, actions := buildPlan(results, opts)

	return &Plan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions in plan and returns how many ran.
// Nothing runs unless opts.Confirmed is set and opts.DryRun is not.
func ApplyPlan(ctx context.Context, client storage.Client, bucket string, plan *Plan, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionDeleteStorage:
			if err := client.RemoveObject(ctx, bucket, action.Key, minio.RemoveObjectOptions{}); err != nil {
				return executed, fmt.Errorf("failed to delete storage key %s: %w", action.Key, err)
			}
			executed++
		default:
			return executed, fmt.Errorf("unknown action %q", action.Type)
		}
	}
	return executed, nil
}

// ReconcileAndApply plans, applies when confirmed, and drops the cache if anything changed.
func ReconcileAndApply(ctx context.Context, spec *Spec, db *gorm.DB, client storage.Client, bucket string, opts Options) (*Plan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, db, client, bucket, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, client, bucket, plan, opts)
	if executed > 0 {
		InvalidateCache(spec)
	}
	return plan, executed, err
}

func buildPlan(results []Result, opts Options) (PlanSummary, []Action) {
	var summary PlanSummary
	var actions []Action

	summary.TotalItems = len(results)

	for _, result := range results {
		if result.Referenced && !result.Stored {
			summary.MissingStorage++
		}

		if result.Stored && !result.Referenced {
			summary.Unreferenced++
			if opts.DoPurge {
				actions = append(actions, Action{
					Type:   ActionDeleteStorage,
					Key:    result.Key,
					Reason: "not referenced by any row",
				})
				summary.PurgeActions++
			}
		}
	}

	return summary, actions
}
