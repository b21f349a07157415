package linepos

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Index queries. Match with errors.Is; the
// concrete *OutOfBoundsError and *InvalidRangeError types carry the
// offending values for callers that need them.
var (
	// ErrOutOfBounds reports an offset past the end of the indexed buffer.
	ErrOutOfBounds = errors.New("offset out of bounds")

	// ErrInvalidRange reports a region whose start exceeds its end.
	ErrInvalidRange = errors.New("invalid range")
)

// OutOfBoundsError is returned when a queried offset exceeds the largest
// valid offset of the indexed buffer.
type OutOfBoundsError struct {
	// Offset is the offending byte offset.
	Offset int

	// Bound is the largest valid offset for this index.
	Bound int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("offset %d out of bounds: valid offsets are 0..%d", e.Offset, e.Bound)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// InvalidRangeError is returned when a region's start offset exceeds its
// end offset.
type InvalidRangeError struct {
	Start int
	End   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %d exceeds end %d", e.Start, e.End)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}
