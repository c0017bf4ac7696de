package checks

import (
	"context"
	"fmt"

	"travel-admin/feature/catalog/sync"

	"gorm.io/gorm"
)

// OrphanReport counts child and membership rows whose owner no longer exists.
type OrphanReport struct {
	Clean  bool             `json:"clean"`
	Fixed  bool             `json:"fixed"`
	Counts map[string]int64 `json:"counts"`
}

// orphanProbe selects rows of model whose column points at no row of target.
type orphanProbe struct {
	label  string
	model  any
	column string
	target any
}

// CheckOrphans walks every kind's ownership tree and reference sets.
// With fix, orphans are deleted; owners are purged before their children
// so rows orphaned by the purge are caught at the next level.
func CheckOrphans(ctx context.Context, db *gorm.DB, kinds []sync.Kind, fix bool) (*OrphanReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	db = db.WithContext(ctx)

	report := &OrphanReport{Clean: true, Counts: make(map[string]int64)}

	for _, probe := range probes(db, kinds) {
		owners := db.Session(&gorm.Session{NewDB: true}).Model(probe.target).Select("id")
		where := fmt.Sprintf("%s NOT IN (?)", probe.column)

		var n int64
		if err := db.Session(&gorm.Session{NewDB: true}).Model(probe.model).Where(where, owners).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", probe.label, err)
		}
		report.Counts[probe.label] = n
		if n == 0 {
			continue
		}
		report.Clean = false

		if fix {
			if err := db.Session(&gorm.Session{NewDB: true}).Where(where, owners).Delete(probe.model).Error; err != nil {
				return nil, fmt.Errorf("failed to purge %s: %w", probe.label, err)
			}
			report.Fixed = true
		}
	}

	return report, nil
}

func probes(db *gorm.DB, kinds []sync.Kind) []orphanProbe {
	var out []orphanProbe
	for _, kind := range kinds {
		kind.Walk(func(owner, c *sync.Collection) {
			var target any = kind.Model
			if owner != nil {
				target = owner.Model
			}
			out = append(out, orphanProbe{
				label:  tableOf(db, c.Model) + "." + c.OwnerKey,
				model:  c.Model,
				column: c.OwnerKey,
				target: target,
			})
		})
		for _, ref := range kind.References {
			join := tableOf(db, ref.Join)
			out = append(out,
				orphanProbe{label: join + "." + ref.OwnerKey, model: ref.Join, column: ref.OwnerKey, target: kind.Model},
				orphanProbe{label: join + "." + ref.RefKey, model: ref.Join, column: ref.RefKey, target: ref.Model},
			)
		}
	}
	return out
}

func tableOf(db *gorm.DB, model any) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}
