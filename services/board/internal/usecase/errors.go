package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrCoreFull     = errors.New("core tier is full")
	ErrStorage      = errors.New("storage failure")

	ErrInvalidTransition = fmt.Errorf("%w: status transition not allowed", ErrInvalidInput)
	ErrUnknownAction     = fmt.Errorf("%w: unknown resolution action", ErrInvalidInput)
	ErrInvalidCoordinate = fmt.Errorf("%w: coordinates must be finite numbers", ErrInvalidInput)

	// ErrReplacementFailed marks a failed insert of the draft after the
	// referenced post's status had been written. It is always accompanied by
	// ErrStorage. The status write is rolled back with the transaction.
	ErrReplacementFailed = errors.New("replacement insert failed")
)

// storageError passes domain errors through and wraps anything else as a
// storage failure of op.
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrCoreFull),
		errors.Is(err, ErrStorage):
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
