package wizard

import (
	"fmt"

	"dispatchly/models"
)

// ValidationError carries per-field messages for the current step.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// ConflictBlockedError is returned when a submit is attempted while the
// availability report still shows conflicts.
type ConflictBlockedError struct {
	Report *models.ConflictReport
}

func (e *ConflictBlockedError) Error() string {
	return "submission blocked by availability conflicts"
}

// CommitError wraps a partially completed commit. Result lists everything
// that was created before the failing step; nothing is rolled back.
type CommitError struct {
	Result *models.CreationResult
	Err    error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed at step %q: %v", e.Result.FailedStep, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
