package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a conditional state transition failed because the
// resource was not in the expected state (e.g. a finalize lock could not be
// acquired because another request holds it, or the document is already final).
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates the caller lacks the permission required for the operation.
var ErrForbidden = errors.New("operation not permitted")

// PartialFailureError wraps an error that occurred after a finalize lock was
// acquired and some side effects may already have been applied. By the time it
// is surfaced to a caller, the compensating rollback has already run.
type PartialFailureError struct {
	DocumentID string
	Err        error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("finalization of document %s failed and was rolled back: %v", e.DocumentID, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

// NewPartialFailure wraps err as a PartialFailureError for the given document.
func NewPartialFailure(documentID string, err error) *PartialFailureError {
	return &PartialFailureError{DocumentID: documentID, Err: err}
}

// RollbackFailureError indicates the compensating rollback itself failed. The
// ledger may be inconsistent and requires manual operator intervention; this is
// never retried automatically.
type RollbackFailureError struct {
	DocumentID  string
	FinalizeErr error // the error that triggered the rollback
	RollbackErr error // the error the rollback itself hit
}

func (e *RollbackFailureError) Error() string {
	return fmt.Sprintf("rollback failed for document %s (finalize error: %v): %v",
		e.DocumentID, e.FinalizeErr, e.RollbackErr)
}

func (e *RollbackFailureError) Unwrap() error {
	return e.RollbackErr
}
