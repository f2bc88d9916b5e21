package domain

import (
	"errors"
	"fmt"
)

// ValidationError signals that a field on a create/update payload violated a
// domain invariant. It always names the first violated field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError signals that an operation addressed an id that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Resource, e.ID)
}

// UnknownStatusError signals a transfer status string outside the closed
// enumeration. Distinct from validation and not-found failures.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown transfer status: %q (valid: %s)", e.Value, allTransferStatuses())
}

// ConflictError signals a storage-level uniqueness violation, e.g. a duplicate
// cryptocurrency symbol or slug.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
