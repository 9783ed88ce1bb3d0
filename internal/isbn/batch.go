package isbn

import (
	"errors"
	"fmt"
)

// MaxBatch bounds a single batch call. It protects the service, it is not a
// property of the scheme.
const MaxBatch = 250

// BatchResult is a set of distinct codes sharing one prefix.
type BatchResult struct {
	Prefix string
	Codes  []Digits
	// Next continues after the last issued code; passing it to a later
	// batch keeps the two batches disjoint.
	Next Cursor
}

// Count is the number of codes issued.
func (b BatchResult) Count() int { return len(b.Codes) }

// Strings formats the issued codes.
func (b BatchResult) Strings() []string {
	out := make([]string, len(b.Codes))
	for i, d := range b.Codes {
		out[i] = d.String()
	}
	return out
}

// Batch generates count codes under one prefix starting at cursor. Either all
// count codes are returned or an error is; a short batch is reported as an
// *UnderfilledError.
func (s Scheme) Batch(req Request, count int, cursor Cursor) (BatchResult, error) {
	if count < 1 || count > MaxBatch {
		return BatchResult{}, fmt.Errorf("%w: count must be between 1 and %d, got %d", ErrInvalidCount, MaxBatch, count)
	}

	res := BatchResult{
		Prefix: req.Prefix(),
		Codes:  make([]Digits, 0, count),
	}
	issued := make(map[string]struct{}, count)
	for len(res.Codes) < count {
		d, next, err := s.Generate(req, cursor)
		if err != nil {
			if errors.Is(err, ErrCapacityExhausted) {
				return BatchResult{}, &UnderfilledError{Requested: count, Produced: len(res.Codes)}
			}
			return BatchResult{}, err
		}
		book := BookNumber(d, req)
		if _, dup := issued[book]; dup {
			return BatchResult{}, fmt.Errorf("%w: book number %s issued twice in one batch", ErrInvariantBroken, book)
		}
		issued[book] = struct{}{}
		res.Codes = append(res.Codes, d)
		cursor = next
	}
	res.Next = cursor
	return res, nil
}
