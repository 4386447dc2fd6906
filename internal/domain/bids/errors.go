package bids

import (
	"errors"
	"fmt"

	"github.com/floroz/bid-manager/internal/lock"
	"github.com/floroz/bid-manager/internal/store"
)

// Placement errors. Callers classify with errors.Is.
var (
	// ErrValidation is returned for malformed input; not retryable
	ErrValidation = errors.New("invalid bid")

	// ErrStoreUnavailable is returned when the shared store cannot be reached; retryable
	ErrStoreUnavailable = errors.New("bid store unavailable")

	// ErrLockTimeout is returned when the lot lock could not be obtained in time; retryable
	ErrLockTimeout = errors.New("timed out waiting for lot lock")

	// ErrTopBidNotFound is returned when no bid has been accepted for a lot yet
	ErrTopBidNotFound = errors.New("no accepted bid for lot")

	// ErrInternal is returned for any other unexpected failure
	ErrInternal = errors.New("internal bid error")
)

// classify wraps err with the placement error class it belongs to
func classify(op string, err error) error {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, ErrLockTimeout),
		errors.Is(err, ErrInternal):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	case errors.Is(err, lock.ErrTimeout):
		return fmt.Errorf("%s: %w: %w", op, ErrLockTimeout, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
	}
}

// errorClass names the class of err for logs and metrics
func errorClass(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, ErrLockTimeout):
		return "lock_timeout"
	default:
		return "internal"
	}
}
