package checks

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"travel-admin/core/database"

	"gorm.io/gorm"
)

// SchemaReport compares the live database against the catalog models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport is the outcome for one table.
type TableReport struct {
	Missing        bool     `json:"missing"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies that every model's table and columns exist.
// Column types are only compared where the model pins one with a type tag.
func CheckSchema(db *gorm.DB, models []any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{Matched: true, Tables: make(map[string]TableReport), Errors: []string{}}

	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		sch := stmt.Schema

		tbl := TableReport{MissingColumns: []string{}, TypeMismatches: []string{}, Status: "ok"}

		actual, err := database.GetTableColumns(db, sch.Table)
		if errors.Is(err, database.ErrTableMissing) {
			tbl.Missing = true
			tbl.Status = "error"
			report.Tables[sch.Table] = tbl
			report.Matched = false
			continue
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", sch.Table, err))
			report.Matched = false
			continue
		}

		actualMap := make(map[string]database.ColumnInfo, len(actual))
		for _, col := range actual {
			actualMap[col.Field] = col
		}

		for _, name := range sch.DBNames {
			col, ok := actualMap[name]
			if !ok {
				tbl.MissingColumns = append(tbl.MissingColumns, name)
				continue
			}
			want := strings.ToLower(sch.FieldsByDBName[name].TagSettings["TYPE"])
			if want != "" && !strings.Contains(strings.ToLower(col.Type), want) {
				tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", name, want, col.Type))
			}
		}

		if len(tbl.MissingColumns) > 0 || len(tbl.TypeMismatches) > 0 {
			sort.Strings(tbl.MissingColumns)
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[sch.Table] = tbl
	}

	return report, nil
}
