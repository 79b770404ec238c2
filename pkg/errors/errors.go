package errors

import (
	"errors"
	"fmt"
)

// StorageError is returned when the underlying query executor fails.
// Driver specific error codes never leave the store: callers only see this kind.
type StorageError struct {
	op  string
	err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{op: op, err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.op, e.err)
}

func (e *StorageError) Unwrap() error {
	return e.err
}

func (e *StorageError) Op() string {
	return e.op
}

func IsStorageError(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}

type ResourceNotFoundError struct {
	resource string
	id       string
}

func NewResourceNotFoundError(resource, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{resource: resource, id: id}
}

func NewServiceNotFoundError(name string) *ResourceNotFoundError {
	return NewResourceNotFoundError("service", name)
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.resource, e.id)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// ValidationError reports bad caller input (time windows, limits, enum values).
type ValidationError struct {
	field  string
	reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{field: field, reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.field, e.reason)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
