package profile

import (
	"errors"
	"fmt"
)

// Sentinel errors for profile operations.
var (
	// ErrEmpty indicates an attempt to build a profile with no samples.
	ErrEmpty = errors.New("profile: no samples")

	// ErrOutOfRange indicates an index or fraction outside the profile.
	ErrOutOfRange = errors.New("profile: index out of range")

	// ErrNonFinite indicates a NaN or ±Inf scalar operand.
	ErrNonFinite = errors.New("profile: NaN or Inf operand")

	// ErrSizeMismatch indicates two operands (or a mask) of different lengths.
	ErrSizeMismatch = errors.New("profile: size mismatch")

	// ErrBadWindow indicates a window size below 1.
	ErrBadWindow = errors.New("profile: window size must be >= 1")

	// ErrTooShort indicates a resampling target below MinLength.
	ErrTooShort = errors.New("profile: length below minimum")

	// ErrBadOffsetRange indicates an empty [min, max) best-fit search range.
	ErrBadOffsetRange = errors.New("profile: offset range is empty")

	// ErrNoCandidates indicates an extremum search over an all-false mask.
	ErrNoCandidates = errors.New("profile: no candidate indexes")
)

// profileErrorf tags err with the operation name.
func profileErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
