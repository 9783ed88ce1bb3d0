package isbn

import (
	"errors"
	"fmt"
)

var (
	// Input errors. Callers surface these as-is.
	ErrMalformedInput    = errors.New("malformed input")
	ErrPrefixTooLong     = errors.New("prefix too long")
	ErrCapacityExhausted = errors.New("capacity exhausted")
	ErrInvalidCount      = errors.New("invalid count")
	ErrBatchUnderfilled  = errors.New("batch underfilled")

	// ErrInvariantBroken means the scheme produced a code it rejects itself.
	// It is never caused by bad input.
	ErrInvariantBroken = errors.New("generator invariant broken")
)

// UnderfilledError reports a batch that ran out of book numbers before
// reaching the requested count.
type UnderfilledError struct {
	Requested int
	Produced  int
}

func (e *UnderfilledError) Error() string {
	return fmt.Sprintf("batch underfilled: produced %d of %d requested codes", e.Produced, e.Requested)
}

// Unwrap lets errors.Is match both ErrBatchUnderfilled and the
// ErrCapacityExhausted that stopped the batch.
func (e *UnderfilledError) Unwrap() []error {
	return []error{ErrBatchUnderfilled, ErrCapacityExhausted}
}

// IsInputError reports whether err was caused by caller input rather than a
// scheme bug.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrPrefixTooLong) ||
		errors.Is(err, ErrCapacityExhausted) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrBatchUnderfilled)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
