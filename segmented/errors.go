// SPDX-License-Identifier: MIT

package segmented

import (
	"errors"
	"fmt"
)

// Sentinel errors for segmented profile operations. Failures raised by
// package segment are passed through wrapped, so segment.ErrUpdateRejected
// and its causes also match with errors.Is.
var (
	// ErrNilProfile indicates a nil profile argument.
	ErrNilProfile = errors.New("segmented: nil profile")

	// ErrSegmentNotFound indicates an id or name absent from the partition.
	ErrSegmentNotFound = errors.New("segmented: segment not found")

	// ErrTemplateMismatch indicates a template whose segment ids differ.
	ErrTemplateMismatch = errors.New("segmented: template segment ids differ")

	// ErrLengthMismatch indicates a normalised profile of the wrong length.
	ErrLengthMismatch = errors.New("segmented: normalised length differs from template")
)

// segmentedErrorf tags err with the operation name.
func segmentedErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// notFound reports a lookup miss for id.
func notFound(op string, id any) error {
	return fmt.Errorf("%s: %w: %v", op, ErrSegmentNotFound, id)
}
