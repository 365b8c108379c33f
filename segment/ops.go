// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellprof/ring"
)

// Offset returns a copy of s shifted by amount positions around the ring.
// Merge sources shift with it.
func (s *Segment) Offset(amount int) *Segment {
	d := s.Duplicate()
	d.shift(amount)

	return d
}

func (s *Segment) shift(amount int) {
	s.start = ring.Wrap(s.start+amount, s.ringSize)
	s.end = ring.Wrap(s.end+amount, s.ringSize)
	for i := range s.sources {
		s.sources[i].shift(amount)
	}
}

// Reverse returns the position of s once the whole ring is reversed:
// index i maps to N-1-i, so the new range is [N-1-end, N-1-start].
// Merge sources are reversed and their order flipped.
func (s *Segment) Reverse() *Segment {
	d := s.Duplicate()
	d.flip()

	return d
}

func (s *Segment) flip() {
	last := s.ringSize - 1
	s.start, s.end = last-s.end, last-s.start
	for i, j := 0, len(s.sources)-1; i < j; i, j = i+1, j-1 {
		s.sources[i], s.sources[j] = s.sources[j], s.sources[i]
	}
	for i := range s.sources {
		s.sources[i].flip()
	}
}

// Merge joins two adjacent segments into a new segment id whose merge
// sources are a and b in ring order, whichever order they are passed in.
//
// When a and b share both boundaries (the two segments of a two-segment
// partition) the non-wrapping one is taken first. Locked segments cannot be
// merged.
func Merge(a, b *Segment, id ID) (*Segment, error) {
	const op = "Merge"
	if a == nil || b == nil {
		return nil, segmentErrorf(op, ErrNilSegment)
	}
	if a.ringSize != b.ringSize {
		return nil, segmentErrorf(op, ErrRingSizeMismatch)
	}
	if id == "" {
		return nil, segmentErrorf(op, ErrInvalidID)
	}
	if id == WholeRingID {
		return nil, segmentErrorf(op, ErrReservedID)
	}
	if a.locked || b.locked {
		return nil, rejectf(op, ErrLocked)
	}

	first, second, err := mergeOrder(a, b)
	if err != nil {
		return nil, rejectf(op, err)
	}

	merged, err := New(id, first.start, second.end, first.ringSize)
	if err != nil {
		return nil, segmentErrorf(op, err)
	}
	if err := merged.AddMergeSource(first); err != nil {
		return nil, segmentErrorf(op, err)
	}
	if err := merged.AddMergeSource(second); err != nil {
		return nil, segmentErrorf(op, err)
	}

	return merged, nil
}

// mergeOrder returns a and b in ring order.
func mergeOrder(a, b *Segment) (*Segment, *Segment, error) {
	if a.IsWholeRing() || b.IsWholeRing() {
		return nil, nil, fmt.Errorf("%w: whole-ring segment has no neighbours", ErrNotAdjacent)
	}
	ab := a.end == b.start
	ba := b.end == a.start
	switch {
	case ab && ba:
		if a.Wraps() {
			return b, a, nil
		}
		return a, b, nil
	case ab:
		return a, b, nil
	case ba:
		return b, a, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a.id, b.id)
	}
}

// Split cuts s at index at into [start, at] and [at, end].
//
// at must lie strictly inside s with both halves at least MinLength long.
// The halves are unlocked and carry no merge sources: the id of s is not
// recoverable by a later merge.
func Split(s *Segment, at int, first, second ID) (*Segment, *Segment, error) {
	const op = "Split"
	if s == nil {
		return nil, nil, segmentErrorf(op, ErrNilSegment)
	}
	if first == second {
		return nil, nil, segmentErrorf(op, fmt.Errorf("%w: %s", ErrDuplicateID, first))
	}
	if s.locked {
		return nil, nil, rejectf(op, fmt.Errorf("%w: %s", ErrLocked, s.id))
	}
	if !ring.Valid(at, s.ringSize) {
		return nil, nil, rejectf(op, fmt.Errorf("%w: %d", ErrInvalidRange, at))
	}
	if at == s.start || at == s.end || !s.Contains(at) {
		return nil, nil, rejectf(op, fmt.Errorf("%w: %d not inside %s", ErrNotContained, at, s))
	}
	if ring.ArcLength(s.start, at, s.ringSize) < MinLength ||
		ring.ArcLength(at, s.end, s.ringSize) < MinLength {
		return nil, nil, rejectf(op, fmt.Errorf("%w: split of %s at %d", ErrTooShort, s.id, at))
	}

	a, err := New(first, s.start, at, s.ringSize)
	if err != nil {
		return nil, nil, segmentErrorf(op, err)
	}
	b, err := New(second, at, s.end, s.ringSize)
	if err != nil {
		return nil, nil, segmentErrorf(op, err)
	}

	return a, b, nil
}

// IsSplittable reports whether Split(s, at, …) would accept the index.
func (s *Segment) IsSplittable(at int) bool {
	if s.locked || !ring.Valid(at, s.ringSize) || at == s.start || at == s.end || !s.Contains(at) {
		return false
	}

	return ring.ArcLength(s.start, at, s.ringSize) >= MinLength &&
		ring.ArcLength(at, s.end, s.ringSize) >= MinLength
}

// Scale maps s onto a ring of ringSize positions, moving each boundary i to
// round(ringSize·i/N). Merge sources are scaled with it and dropped if they
// no longer form a valid cover. Boundaries shared by partition neighbours
// scale to the same index, so a scaled partition stays gap-free.
func (s *Segment) Scale(ringSize int) (*Segment, error) {
	const op = "Scale"
	if ringSize <= 0 {
		return nil, segmentErrorf(op, ring.ErrBadRingSize)
	}
	start, end := scaleIndex(s.start, s.ringSize, ringSize), scaleIndex(s.end, s.ringSize, ringSize)
	if !s.IsWholeRing() && start == end {
		return nil, rejectf(op, fmt.Errorf("%w: %s collapses", ErrTooShort, s.id))
	}
	if err := checkBounds(s.id, start, end, ringSize); err != nil {
		return nil, rejectf(op, err)
	}

	d := &Segment{id: s.id, start: start, end: end, ringSize: ringSize, locked: s.locked}
	for i := range s.sources {
		src, err := s.sources[i].Scale(ringSize)
		if err != nil {
			d.sources = nil
			break
		}
		d.sources = append(d.sources, *src)
	}
	if d.sources != nil && d.Validate() != nil {
		d.sources = nil
	}

	return d, nil
}

func scaleIndex(i, from, to int) int {
	return ring.Wrap(int(math.Round(float64(to)*float64(i)/float64(from))), to)
}
