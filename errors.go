package coffee

import (
	"errors"
	"fmt"
)

// Sentinel errors, to be tested with errors.Is.
var (
	ErrInvalid     = errors.New("invalid input")
	ErrNotFound    = errors.New("run not found")
	ErrNoConsumers = errors.New("no previous consumers found")
)

// ValidationError reports malformed or disallowed input to a mutation.
// It is always returned before any change to the ledger.
type ValidationError struct {
	Err error // all the validation failures, joined
}

func (e *ValidationError) Error() string        { return "invalid input: " + e.Err.Error() }
func (e *ValidationError) Unwrap() error        { return e.Err }
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// invalid joins errs into a ValidationError, or returns nil if there is none.
func invalid(errs ...error) error {
	err := errors.Join(errs...)
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

// NotFoundError reports a run id that does not exist in the ledger.
type NotFoundError struct {
	ID RunID
}

func (e *NotFoundError) Error() string        { return fmt.Sprintf("run %q not found", string(e.ID)) }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// EmptyStateError reports a query without any eligible subject.
type EmptyStateError struct{}

func (e *EmptyStateError) Error() string        { return ErrNoConsumers.Error() }
func (e *EmptyStateError) Is(target error) bool { return target == ErrNoConsumers }
