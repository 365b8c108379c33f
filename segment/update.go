// SPDX-License-Identifier: MIT
// Package: segment
//
// Purpose:
//  - Move the boundaries of one segment of a partition together with the
//    neighbours that share them.
//  - Validate every constraint first, then write. A rejected update leaves
//    all three segments untouched.
//
// Constraints, in check order:
//  1. target indexes lie on the ring
//  2. the segment is not locked (a no-op update on an unlocked segment succeeds)
//  3. a lone segment stays whole-ring; a partial segment stays partial
//  4. resulting length of the segment within [MinLength, N+2-MinLength]
//  5. a neighbour whose boundary moves is not locked
//  6. a moved boundary lands inside the segment or the neighbour it moves into
//  7. neighbours keep MinLength and the three arcs still cover the same
//     stretch of ring (no inversion)
//
// Merge sources follow the moved boundaries when the resulting tree is still
// valid; otherwise the provenance of that segment is dropped.

package segment

import (
	"fmt"

	"github.com/katalvlaran/cellprof/ring"
)

// Update moves s to [start, end].
//
// prev and next are the segments before and after s in its partition. In a
// two-segment partition they are the same segment; for the lone whole-ring
// segment of an unsegmented ring both are nil.
func Update(s, prev, next *Segment, start, end int) error {
	const op = "Update"
	if s == nil {
		return segmentErrorf(op, ErrNilSegment)
	}
	n := s.ringSize
	if !ring.Valid(start, n) || !ring.Valid(end, n) {
		return rejectf(op, fmt.Errorf("%w: [%d,%d] in ring of %d", ErrInvalidRange, start, end, n))
	}
	if s.locked {
		return rejectf(op, fmt.Errorf("%w: %s", ErrLocked, s.id))
	}
	if start == s.start && end == s.end {
		return nil
	}

	if prev == nil && next == nil {
		if !s.IsWholeRing() {
			return rejectf(op, ErrMissingNeighbour)
		}
		if start != end {
			return rejectf(op, fmt.Errorf("%w: lone segment must span the ring", ErrCoverage))
		}
		s.setBounds(start, end)

		return nil
	}
	if prev == nil || next == nil {
		return rejectf(op, ErrMissingNeighbour)
	}
	if prev.ringSize != n || next.ringSize != n {
		return rejectf(op, ErrRingSizeMismatch)
	}
	if prev.end != s.start || s.end != next.start {
		return rejectf(op, fmt.Errorf("%w: %s is not between %s and %s", ErrNotAdjacent, s.id, prev.id, next.id))
	}
	if start == end {
		return rejectf(op, fmt.Errorf("%w: whole ring inside a partition", ErrTooLong))
	}

	length := ring.ArcLength(start, end, n)
	if length < MinLength {
		return rejectf(op, fmt.Errorf("%w: %s would be %d", ErrTooShort, s.id, length))
	}
	if length > maxPartialLength(n) {
		return rejectf(op, fmt.Errorf("%w: %s would be %d", ErrTooLong, s.id, length))
	}

	moveStart, moveEnd := start != s.start, end != s.end
	if moveStart && prev.locked {
		return rejectf(op, fmt.Errorf("%w: %s", ErrNeighbourLocked, prev.id))
	}
	if moveEnd && next.locked {
		return rejectf(op, fmt.Errorf("%w: %s", ErrNeighbourLocked, next.id))
	}
	if moveStart && !s.Contains(start) && !prev.Contains(start) {
		return rejectf(op, fmt.Errorf("%w: start %d beyond %s", ErrEncroach, start, prev.id))
	}
	if moveEnd && !s.Contains(end) && !next.Contains(end) {
		return rejectf(op, fmt.Errorf("%w: end %d beyond %s", ErrEncroach, end, next.id))
	}

	if prev == next {
		if other := ring.ArcLength(end, start, n); other < MinLength {
			return rejectf(op, fmt.Errorf("%w: %s would be %d", ErrTooShort, prev.id, other))
		}
		prev.setBounds(end, start)
		s.setBounds(start, end)

		return nil
	}

	if start == prev.start || end == next.end {
		return rejectf(op, fmt.Errorf("%w: neighbour collapses", ErrTooShort))
	}
	prevLen := ring.ArcLength(prev.start, start, n)
	nextLen := ring.ArcLength(end, next.end, n)
	if prevLen < MinLength {
		return rejectf(op, fmt.Errorf("%w: %s would be %d", ErrTooShort, prev.id, prevLen))
	}
	if nextLen < MinLength {
		return rejectf(op, fmt.Errorf("%w: %s would be %d", ErrTooShort, next.id, nextLen))
	}
	if prevLen+length+nextLen != prev.Length()+s.Length()+next.Length() {
		return rejectf(op, fmt.Errorf("%w: [%d,%d]", ErrInversion, start, end))
	}

	prev.setBounds(prev.start, start)
	next.setBounds(end, next.end)
	s.setBounds(start, end)

	return nil
}

// setBounds writes new boundaries and refits the merge sources to them.
func (s *Segment) setBounds(start, end int) {
	s.start, s.end = start, end
	if len(s.sources) == 0 {
		return
	}
	if !s.sourcesFit(start, end) {
		s.sources = nil
		return
	}

	last := len(s.sources) - 1
	if last == 0 {
		s.sources[0].setBounds(start, end)
		return
	}
	s.sources[0].setBounds(start, s.sources[0].end)
	s.sources[last].setBounds(s.sources[last].start, end)
}

// sourcesFit reports whether the merge sources remain a valid cover of
// [start, end] once the first starts at start and the last ends at end.
func (s *Segment) sourcesFit(start, end int) bool {
	k := len(s.sources)
	total := 0
	for i := range s.sources {
		a, b := s.sources[i].start, s.sources[i].end
		if i == 0 {
			a = start
		}
		if i == k-1 {
			b = end
		}
		if k > 1 && a == b {
			return false
		}
		if checkBounds(s.sources[i].id, a, b, s.ringSize) != nil {
			return false
		}
		total += ring.ArcLength(a, b, s.ringSize)
	}

	return total-(k-1) == ring.ArcLength(start, end, s.ringSize)
}
