package diffdist

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVariationCount is matched by *UnsupportedVariationCountError.
	ErrUnsupportedVariationCount = errors.New("normal difference distribution only supports two variations")

	// ErrDegenerateVariance is returned when the combined variance
	// does not describe a normal distribution.
	ErrDegenerateVariance = errors.New("combined variance must be positive and finite")

	ErrInvalidMean   = errors.New("proportion mean must be finite")
	ErrInvalidRange  = errors.New("invalid number range")
	ErrDuplicateRole = errors.New("both variations have the same role")
	ErrInvalidCounts = errors.New("invalid conversion counts")
)

// UnsupportedVariationCountError is returned when the number of
// variations is not exactly two.
type UnsupportedVariationCountError struct {
	Count int
}

func (e *UnsupportedVariationCountError) Error() string {
	return fmt.Sprintf("%s, got %d", ErrUnsupportedVariationCount, e.Count)
}

func (e *UnsupportedVariationCountError) Is(target error) bool {
	return target == ErrUnsupportedVariationCount
}
