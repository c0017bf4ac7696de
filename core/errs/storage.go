package errs

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// MySQL server error numbers treated as retryable conflicts.
const (
	mysqlDuplicateEntry  = 1062
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
)

// FromStorage tags a storage failure. Errors already tagged pass through unchanged.
//
//   - record not found: NotFound
//   - duplicate key, deadlock, lock wait timeout, SQLite busy/locked/unique: ConflictRetryable
//   - anything else, including cancelled contexts and broken connections: StorageUnavailable
func FromStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}
	return Wrap(classify(err), op, err)
}

func classify(err error) Kind {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ConflictRetryable
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlLockWaitTimeout, mysqlDeadlock:
			return ConflictRetryable
		}
		return StorageUnavailable
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return ConflictRetryable
		case sqlite3.ErrConstraint:
			if liteErr.ExtendedCode == sqlite3.ErrConstraintUnique || liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
				return ConflictRetryable
			}
		}
		return StorageUnavailable
	}

	return StorageUnavailable
}
