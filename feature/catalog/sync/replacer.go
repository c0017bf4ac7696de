package sync

import (
	"fmt"
	"reflect"

	"travel-admin/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Replacer swaps the full set of rows a parent owns in one collection.
// It only ever runs inside the caller's transaction.
type Replacer struct{}

// Replace deletes every row of c (and everything below it) owned by ownerID, then inserts rows
// in the given order. An empty rows slice clears the collection.
func (Replacer) Replace(tx *gorm.DB, c Collection, ownerID string, rows []models.Row) (int, error) {
	if err := (Replacer{}).Clear(tx, c, ownerID); err != nil {
		return 0, err
	}
	for i, row := range rows {
		row.Adopt(ownerID, i)
	}
	return insertLevel(tx, c, rows)
}

// Clear deletes the rows of c whose owner key matches owner, innermost level first.
// owner is either a single id or a subquery selecting owner ids.
func (Replacer) Clear(tx *gorm.DB, c Collection, owner any) error {
	if len(c.Children) > 0 {
		ids := tx.Session(&gorm.Session{NewDB: true}).
			Model(c.Model).
			Select("id").
			Where(fmt.Sprintf("%s IN (?)", c.OwnerKey), owner)
		for _, child := range c.Children {
			if err := (Replacer{}).Clear(tx, child, ids); err != nil {
				return err
			}
		}
	}
	if err := tx.Where(fmt.Sprintf("%s IN (?)", c.OwnerKey), owner).Delete(c.Model).Error; err != nil {
		return fmt.Errorf("failed to clear %s: %w", c.Name, err)
	}
	return nil
}

// insertLevel writes rows in one batch, then each nested collection of those rows in one batch per level.
func insertLevel(tx *gorm.DB, c Collection, rows []models.Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch := reflect.New(reflect.SliceOf(reflect.TypeOf(c.Model).Elem()))
	for _, row := range rows {
		batch.Elem().Set(reflect.Append(batch.Elem(), reflect.ValueOf(row).Elem()))
	}
	if err := tx.Omit(clause.Associations).Create(batch.Interface()).Error; err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", c.Name, err)
	}

	written := len(rows)
	for _, child := range c.Children {
		var nested []models.Row
		for _, row := range rows {
			for i, n := range row.Nested(child.Name) {
				n.Adopt(row.Key(), i)
				nested = append(nested, n)
			}
		}
		n, err := insertLevel(tx, child, nested)
		if err != nil {
			return 0, err
		}
		written += n
	}
	return written, nil
}
