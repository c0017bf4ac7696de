package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for callers.
// Kinds are string-based so they serialize naturally into API responses.
type Kind string

const (
	// NotFound indicates the targeted parent entity does not exist.
	NotFound Kind = "NOT_FOUND"

	// ValidationFailed indicates the payload violates a documented constraint.
	ValidationFailed Kind = "VALIDATION_FAILED"

	// ConflictRetryable indicates a concurrent write collided on a unique constraint or lock.
	// The whole call may be retried.
	ConflictRetryable Kind = "CONFLICT_RETRYABLE"

	// StorageUnavailable indicates the storage layer could not complete the transaction.
	StorageUnavailable Kind = "STORAGE_UNAVAILABLE"
)

// Error is a tagged failure.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Op names the operation that failed, e.g. "package.update".
	Op string
	// Msg is a human readable description.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error without an underlying cause.
func New(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind. A nil err yields nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the outermost tagged error in err's chain.
// Untagged errors report StorageUnavailable.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return StorageUnavailable
}

// Is reports whether err is tagged with kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Retryable reports whether the caller may safely retry the whole call.
func Retryable(err error) bool {
	return Is(err, ConflictRetryable)
}
