package geoplace

import (
	"errors"
	"fmt"

	"github.com/hupe1980/geoplace/internal/assign"
	"github.com/hupe1980/geoplace/internal/resource"
	"github.com/hupe1980/geoplace/model"
)

var (
	// ErrPrecondition marks caller bugs: inputs that violate the contract of
	// the search entry points. Callers should treat it as fatal.
	ErrPrecondition = errors.New("precondition violated")

	// ErrInvalidK is returned (wrapped in a PreconditionError) when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrAnchorNotFound is returned when a tally anchor matches no region.
	ErrAnchorNotFound = assign.ErrAnchorNotFound

	// ErrAnchorAmbiguous is returned when a tally anchor matches several regions.
	ErrAnchorAmbiguous = assign.ErrAnchorAmbiguous

	// ErrMemoryLimitExceeded is returned when the configured memory limit cannot
	// hold the distance cache and a candidate chunk.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// IndexMismatchError is returned when a region's Index is not its position.
type IndexMismatchError = model.IndexMismatchError

// AnchorError is returned when a tally anchor does not resolve to exactly one region.
type AnchorError = assign.AnchorError

// PreconditionError wraps a contract violation detected at an entry point.
//
// errors.Is(err, ErrPrecondition) holds for every PreconditionError, and the
// original cause can be accessed via errors.Unwrap / errors.As.
type PreconditionError struct {
	Op    string
	cause error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrPrecondition, e.cause)
}

func (e *PreconditionError) Unwrap() []error { return []error{ErrPrecondition, e.cause} }

func precondition(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PreconditionError{Op: op, cause: err}
}

// MemoryError reports how much memory a search needed when it hit the limit.
type MemoryError struct {
	Required int64
	Limit    int64
	cause    error
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("%v: need %d bytes, limit %d bytes", e.cause, e.Required, e.Limit)
}

func (e *MemoryError) Unwrap() error { return e.cause }
