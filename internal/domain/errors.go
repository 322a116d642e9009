package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing caller input (blank required
// reference, non-positive amount, min price above max). Never retryable —
// the caller has to fix the call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// OwnershipError reports an actor acting on an entity it does not control
// (publishing someone else's property, responding to an offer for a property
// the seller does not own).
type OwnershipError struct {
	Message string
}

func (e *OwnershipError) Error() string { return e.Message }

// StateError reports an operation that is illegal in the entity's current
// state (withdrawing more than the balance, feedback before completion).
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func ownershipf(format string, args ...interface{}) error {
	return &OwnershipError{Message: fmt.Sprintf(format, args...)}
}

func statef(format string, args ...interface{}) error {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsOwnership reports whether err is an OwnershipError.
func IsOwnership(err error) bool {
	var oe *OwnershipError
	return errors.As(err, &oe)
}

// IsState reports whether err is a StateError.
func IsState(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}
