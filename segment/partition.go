// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"
)

// ValidatePartition checks that segs cover a ring of size n exactly once.
//
// A single segment must span the whole ring. Two or more segments must each
// be partial, follow one another (segs[i].End() == segs[i+1].Start(), the
// last wrapping to the first) and satisfy Σ Length − len(segs) == n. Ids
// must be unique across every segment and merge source.
func ValidatePartition(segs []*Segment, n int) error {
	const op = "ValidatePartition"
	if len(segs) == 0 {
		return segmentErrorf(op, ErrEmptyPartition)
	}

	ids := make(map[ID]struct{})
	total := 0
	for i, s := range segs {
		if s == nil {
			return segmentErrorf(op, ErrNilSegment)
		}
		if s.ringSize != n {
			return segmentErrorf(op, fmt.Errorf("%w: %s has %d, want %d", ErrRingSizeMismatch, s.id, s.ringSize, n))
		}
		if err := s.Validate(); err != nil {
			return segmentErrorf(op, err)
		}
		for id := range s.treeIDs() {
			if _, dup := ids[id]; dup {
				return segmentErrorf(op, fmt.Errorf("%w: %s", ErrDuplicateID, id))
			}
			ids[id] = struct{}{}
		}
		if len(segs) > 1 {
			if s.IsWholeRing() {
				return segmentErrorf(op, fmt.Errorf("%w: whole-ring %s among %d segments", ErrCoverage, s.id, len(segs)))
			}
			if next := segs[(i+1)%len(segs)]; next != nil && s.end != next.start {
				return segmentErrorf(op, fmt.Errorf("%w: %s ends at %d, %s starts at %d",
					ErrCoverage, s.id, s.end, next.id, next.start))
			}
		}
		total += s.Length()
	}

	if len(segs) == 1 {
		if !segs[0].IsWholeRing() {
			return segmentErrorf(op, fmt.Errorf("%w: lone segment %s is partial", ErrCoverage, segs[0].id))
		}
		return nil
	}
	if total-len(segs) != n {
		return segmentErrorf(op, fmt.Errorf("%w: total length %d over %d segments", ErrCoverage, total, len(segs)))
	}

	return nil
}
