// Package errs defines the failure kinds surfaced by catalog operations.
//
// Every error leaving the synchronizer is an *Error carrying one of four kinds:
//
//   - NOT_FOUND: update/delete/get targeted an absent parent
//   - VALIDATION_FAILED: the payload broke a documented constraint
//   - CONFLICT_RETRYABLE: a unique constraint or lock collided; retry the whole call
//   - STORAGE_UNAVAILABLE: the database could not complete the transaction
//
// FromStorage maps gorm, MySQL and SQLite driver errors onto these kinds. Nothing
// in this module retries automatically; Retryable tells callers when they may.
package errs
