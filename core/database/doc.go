// Package database handles database connections and schema inspection.
//
// It wraps GORM so the rest of the application receives a configured *gorm.DB,
// which acts as the storage gateway for catalog synchronization: transactions,
// conflict-tolerant upserts, and bulk delete/insert by owner key.
//
// # Connect
//
// Connect supports two drivers:
//
//   - mysql: production, pooled connections with I/O timeouts
//   - sqlite: local runs and tests, a single connection with foreign keys enabled
//
// Error translation is turned on so duplicate-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
//
// # Schema Inspection
//
// GetTableColumns lists the actual columns of a table. The integrity feature
// compares them against the catalog models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "packages")
package database
