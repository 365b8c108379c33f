// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellprof/ring"
)

// MinLength is the minimum number of ring positions a segment may cover.
const MinLength = 10

// WholeRingID is the reserved id of the segment spanning an unsegmented ring.
const WholeRingID ID = "11111111-2222-3333-4444-555566667777"

// ID identifies a segment. Ids are opaque non-empty strings.
type ID string

// Segment is a contiguous arc [start, end] of a ring of size ringSize.
// sources holds the segments merged to form this one, in ring order.
type Segment struct {
	id       ID
	start    int
	end      int
	ringSize int
	locked   bool
	sources  []Segment
}

// New builds an unlocked segment with no merge sources.
//
// start == end denotes the whole ring. WholeRingID is only accepted for
// such a segment. A partial segment must be at least MinLength long. The
// room left for neighbours is checked by Update and ValidatePartition.
func New(id ID, start, end, ringSize int) (*Segment, error) {
	if err := checkBounds(id, start, end, ringSize); err != nil {
		return nil, segmentErrorf("New", err)
	}

	return &Segment{id: id, start: start, end: end, ringSize: ringSize}, nil
}

// NewWholeRing builds the sentinel segment covering the whole ring.
func NewWholeRing(ringSize int) (*Segment, error) {
	return New(WholeRingID, 0, 0, ringSize)
}

// checkBounds validates the scalar fields of a segment.
func checkBounds(id ID, start, end, ringSize int) error {
	if ringSize <= 0 {
		return ring.ErrBadRingSize
	}
	if id == "" {
		return ErrInvalidID
	}
	if !ring.Valid(start, ringSize) || !ring.Valid(end, ringSize) {
		return fmt.Errorf("%w: [%d,%d] in ring of %d", ErrInvalidRange, start, end, ringSize)
	}
	if id == WholeRingID && start != end {
		return ErrReservedID
	}

	length := ring.ArcLength(start, end, ringSize)
	if length < MinLength {
		return fmt.Errorf("%w: %d < %d", ErrTooShort, length, MinLength)
	}
	return nil
}

// maxPartialLength is the longest segment that still leaves a neighbour of
// MinLength on the same ring.
func maxPartialLength(n int) int { return n + 2 - MinLength }

// ID returns the segment identifier.
func (s *Segment) ID() ID { return s.id }

// Start returns the first index of the segment.
func (s *Segment) Start() int { return s.start }

// End returns the last index of the segment.
func (s *Segment) End() int { return s.end }

// RingSize returns N.
func (s *Segment) RingSize() int { return s.ringSize }

// IsLocked reports whether the segment rejects updates.
func (s *Segment) IsLocked() bool { return s.locked }

// SetLocked sets the lock flag.
func (s *Segment) SetLocked(locked bool) { s.locked = locked }

// Length returns the number of ring positions covered, endpoints inclusive.
// The whole-ring segment has length N+1.
func (s *Segment) Length() int { return ring.ArcLength(s.start, s.end, s.ringSize) }

// Wraps reports whether the segment passes from N-1 back to 0.
func (s *Segment) Wraps() bool { return ring.Wraps(s.start, s.end) }

// IsWholeRing reports whether the segment covers the entire ring.
func (s *Segment) IsWholeRing() bool { return s.start == s.end }

// Contains reports whether index i lies within the segment.
func (s *Segment) Contains(i int) bool {
	return ring.RangeContains(s.start, s.end, i, s.ringSize)
}

// Indexes returns the ring positions covered, walking from start to end.
// The whole-ring segment returns start twice, first and last.
func (s *Segment) Indexes() []int {
	out := make([]int, s.Length())
	for i := range out {
		out[i] = ring.Wrap(s.start+i, s.ringSize)
	}

	return out
}

// MidpointIndex returns the index halfway along the segment.
func (s *Segment) MidpointIndex() int {
	return ring.Wrap(s.start+(s.Length()-1)/2, s.ringSize)
}

// ProportionalIndex returns the index at fraction f ∈ [0,1] of the way from
// start to end. f == 0 yields start and f == 1 yields end.
func (s *Segment) ProportionalIndex(f float64) (int, error) {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return 0, segmentErrorf("ProportionalIndex", ErrInvalidRange)
	}
	step := int(math.Round(float64(s.Length()-1) * f))

	return ring.Wrap(s.start+step, s.ringSize), nil
}

// IndexProportion returns the fraction of the segment preceding index i.
func (s *Segment) IndexProportion(i int) (float64, error) {
	if !s.Contains(i) {
		return 0, segmentErrorf("IndexProportion", ErrNotContained)
	}

	return float64(ring.Wrap(i-s.start, s.ringSize)) / float64(s.Length()), nil
}

// ShortestDistanceToStart returns the circular distance from i to the start.
func (s *Segment) ShortestDistanceToStart(i int) int {
	return ring.ShortestDistance(i, s.start, s.ringSize)
}

// ShortestDistanceToEnd returns the circular distance from i to the end.
func (s *Segment) ShortestDistanceToEnd(i int) int {
	return ring.ShortestDistance(i, s.end, s.ringSize)
}

// Overlaps reports whether s and o share at least one index.
// Segments over different rings never overlap.
func (s *Segment) Overlaps(o *Segment) bool {
	if o == nil || o.ringSize != s.ringSize {
		return false
	}

	return s.Contains(o.start) || s.Contains(o.end) || o.Contains(s.start) || o.Contains(s.end)
}

// OverlapsBeyondEndpoints reports whether s and o share an index other than
// a common boundary. Adjacent segments of a partition return false.
func (s *Segment) OverlapsBeyondEndpoints(o *Segment) bool {
	if !s.Overlaps(o) {
		return false
	}
	if s.IsWholeRing() || o.IsWholeRing() {
		return true
	}
	for _, i := range s.Indexes()[1 : s.Length()-1] {
		if o.Contains(i) {
			return true
		}
	}
	for _, i := range o.Indexes()[1 : o.Length()-1] {
		if s.Contains(i) {
			return true
		}
	}

	return false
}

// Duplicate returns a deep copy, including lock state and the source tree.
func (s *Segment) Duplicate() *Segment {
	d := *s
	d.sources = duplicateSources(s.sources)

	return &d
}

func duplicateSources(src []Segment) []Segment {
	if len(src) == 0 {
		return nil
	}
	out := make([]Segment, len(src))
	for i := range src {
		out[i] = *src[i].Duplicate()
	}

	return out
}

// Equal reports deep equality of id, range, ring size, lock and sources.
func (s *Segment) Equal(o *Segment) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.id != o.id || s.start != o.start || s.end != o.end ||
		s.ringSize != o.ringSize || s.locked != o.locked ||
		len(s.sources) != len(o.sources) {
		return false
	}
	for i := range s.sources {
		if !s.sources[i].Equal(&o.sources[i]) {
			return false
		}
	}

	return true
}

// String renders the segment as "id[start,end]/N".
func (s *Segment) String() string {
	lock := ""
	if s.locked {
		lock = " locked"
	}

	return fmt.Sprintf("%s[%d,%d]/%d%s", s.id, s.start, s.end, s.ringSize, lock)
}
