package sync

import (
	"fmt"
	"reflect"
	"strings"

	"travel-admin/core/errs"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Reference is a resolved shared row.
type Reference struct {
	ID   uint
	Name string
}

// Resolver maps names to shared rows, creating the missing ones.
type Resolver struct{}

// Resolve get-or-creates one shared row per distinct name and returns them in first-seen order.
// Names are trimmed; blanks are dropped. Concurrent callers resolving the same name end up with
// the same row: the insert tolerates conflicts and the read back takes row locks.
func (Resolver) Resolve(tx *gorm.DB, ref ReferenceSet, names []string) ([]Reference, error) {
	names = Normalize(names)
	if len(names) == 0 {
		return nil, nil
	}

	err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(namedRows(ref.Model, names)).Error
	if err != nil {
		return nil, fmt.Errorf("failed to insert %s: %w", ref.Name, err)
	}

	var found []Reference
	err = tx.Model(ref.Model).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "name").
		Where("name IN ?", names).
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ref.Name, err)
	}

	// case-insensitive collations return the stored spelling
	fold := cases.Fold()
	byName := make(map[string]Reference, len(found))
	for _, r := range found {
		byName[r.Name] = r
		if _, ok := byName[fold.String(r.Name)]; !ok {
			byName[fold.String(r.Name)] = r
		}
	}

	out := make([]Reference, 0, len(names))
	seen := make(map[uint]struct{}, len(names))
	for _, n := range names {
		r, ok := byName[n]
		if !ok {
			r, ok = byName[fold.String(n)]
		}
		if !ok {
			// accent-insensitive collations match rows the fold cannot see
			if r, err = lookup(tx, ref, n); err != nil {
				return nil, err
			}
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

// lookup reads the row the database itself considers equal to name.
func lookup(tx *gorm.DB, ref ReferenceSet, name string) (Reference, error) {
	var hit []Reference
	err := tx.Model(ref.Model).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "name").
		Where("name = ?", name).
		Limit(1).
		Find(&hit).Error
	if err != nil {
		return Reference{}, fmt.Errorf("failed to read %s: %w", ref.Name, err)
	}
	if len(hit) == 0 {
		return Reference{}, errs.New(errs.ConflictRetryable, ref.Name+".resolve", "%s %q not visible after insert", ref.Name, name)
	}
	return hit[0], nil
}

// Link replaces the membership rows of ownerID in ref with refs.
func (Resolver) Link(tx *gorm.DB, ref ReferenceSet, ownerID string, refs []Reference) error {
	if err := (Resolver{}).Unlink(tx, ref, ownerID); err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}
	rows := make([]map[string]any, len(refs))
	for i, r := range refs {
		rows[i] = map[string]any{ref.OwnerKey: ownerID, ref.RefKey: r.ID}
	}
	err := tx.Model(ref.Join).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rows).Error
	if err != nil {
		return fmt.Errorf("failed to link %s: %w", ref.Name, err)
	}
	return nil
}

// Unlink severs every membership row of ownerID in ref. Shared rows are kept.
func (Resolver) Unlink(tx *gorm.DB, ref ReferenceSet, ownerID string) error {
	if err := tx.Where(ref.OwnerKey+" = ?", ownerID).Delete(ref.Join).Error; err != nil {
		return fmt.Errorf("failed to unlink %s: %w", ref.Name, err)
	}
	return nil
}

// namedRows builds a pointer to a slice of model rows with their Name field set.
func namedRows(model any, names []string) any {
	typ := reflect.TypeOf(model).Elem()
	rows := reflect.New(reflect.SliceOf(typ))
	for _, n := range names {
		row := reflect.New(typ).Elem()
		row.FieldByName("Name").SetString(n)
		rows.Elem().Set(reflect.Append(rows.Elem(), row))
	}
	return rows.Interface()
}

// Normalize trims names, drops blanks and keeps the first occurrence of each name.
func Normalize(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
