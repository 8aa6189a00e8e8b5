package shared

import "errors"

var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a request payload failed validation.
	ErrValidation = errors.New("validation failed")
)

// NotFoundError reports a missing record with a resource-specific message.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError carries the aggregated validation message for a payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
