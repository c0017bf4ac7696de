package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrTableMissing is returned when an inspected table does not exist.
var ErrTableMissing = errors.New("table does not exist")

// ColumnInfo describes one actual column of a table.
type ColumnInfo struct {
	Field    string
	Type     string
	Nullable bool
}

// GetTableColumns retrieves the column definitions for a given table.
// Names and types are lowercased so callers can compare them with model metadata.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	migrator := db.Migrator()
	if !migrator.HasTable(tableName) {
		return nil, fmt.Errorf("%s: %w", tableName, ErrTableMissing)
	}

	types, err := migrator.ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(types))
	for _, col := range types {
		nullable, _ := col.Nullable()
		columns = append(columns, ColumnInfo{
			Field:    strings.ToLower(col.Name()),
			Type:     strings.ToLower(col.DatabaseTypeName()),
			Nullable: nullable,
		})
	}
	return columns, nil
}
