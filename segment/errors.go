// SPDX-License-Identifier: MIT

package segment

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	// ErrInvalidID indicates an empty segment identifier.
	ErrInvalidID = errors.New("segment: empty id")

	// ErrReservedID indicates misuse of WholeRingID.
	ErrReservedID = errors.New("segment: reserved whole-ring id")

	// ErrInvalidRange indicates a start or end outside [0, N).
	ErrInvalidRange = errors.New("segment: index out of ring")

	// ErrTooShort indicates a segment below MinLength.
	ErrTooShort = errors.New("segment: length below minimum")

	// ErrTooLong indicates a partial segment that leaves no room for a neighbour.
	ErrTooLong = errors.New("segment: length leaves no room for neighbours")

	// ErrRingSizeMismatch indicates segments defined over different rings.
	ErrRingSizeMismatch = errors.New("segment: ring size mismatch")

	// ErrNilSegment indicates a nil *Segment argument.
	ErrNilSegment = errors.New("segment: nil segment")
)

// Provenance errors.
var (
	// ErrDuplicateID indicates an id already present in a segment tree or partition.
	ErrDuplicateID = errors.New("segment: duplicate id")

	// ErrNotContained indicates a merge source that falls outside its parent.
	ErrNotContained = errors.New("segment: range not contained in parent")

	// ErrNotAdjacent indicates segments that do not share a boundary.
	ErrNotAdjacent = errors.New("segment: segments are not adjacent")

	// ErrSourceNotFound indicates a merge-source lookup miss.
	ErrSourceNotFound = errors.New("segment: merge source not found")
)

// Update errors. Every rejected Update, Merge or Split wraps ErrUpdateRejected
// together with one of the specific causes below.
var (
	// ErrUpdateRejected is the umbrella for rejected state transitions.
	ErrUpdateRejected = errors.New("segment: update rejected")

	// ErrLocked indicates the segment itself is locked.
	ErrLocked = errors.New("segment: segment is locked")

	// ErrNeighbourLocked indicates a locked neighbour whose boundary would move.
	ErrNeighbourLocked = errors.New("segment: neighbouring segment is locked")

	// ErrEncroach indicates a boundary moved past a neighbour.
	ErrEncroach = errors.New("segment: boundary moves past neighbouring segment")

	// ErrInversion indicates an update that would fold the partition over itself.
	ErrInversion = errors.New("segment: update inverts the partition")

	// ErrMissingNeighbour indicates a partial segment updated without both neighbours.
	ErrMissingNeighbour = errors.New("segment: neighbours required")

	// ErrCoverage indicates a partition that does not cover the ring exactly once.
	ErrCoverage = errors.New("segment: partition does not cover the ring")

	// ErrEmptyPartition indicates an empty segment list.
	ErrEmptyPartition = errors.New("segment: empty partition")
)

// segmentErrorf tags err with the operation name.
func segmentErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rejectf reports a rejected state transition with its specific cause.
func rejectf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUpdateRejected, cause)
}
