// SPDX-License-Identifier: MIT

package segmented

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cellprof/profile"
	"github.com/katalvlaran/cellprof/segment"
)

// Profile is a profile.Profile with a partition of its ring into segments.
// segments is kept in ring order: each segment ends where the next starts.
type Profile struct {
	values   *profile.Profile
	segments []*segment.Segment
}

// New returns an unsegmented profile: one whole-ring segment with
// segment.WholeRingID.
func New(p *profile.Profile) (*Profile, error) {
	if p == nil {
		return nil, segmentedErrorf("New", ErrNilProfile)
	}
	whole, err := segment.NewWholeRing(p.Size())
	if err != nil {
		return nil, segmentedErrorf("New", err)
	}

	return &Profile{values: p, segments: []*segment.Segment{whole}}, nil
}

// NewWithSegments returns a profile partitioned by deep copies of segs.
func NewWithSegments(p *profile.Profile, segs []*segment.Segment) (*Profile, error) {
	if p == nil {
		return nil, segmentedErrorf("NewWithSegments", ErrNilProfile)
	}
	if err := segment.ValidatePartition(segs, p.Size()); err != nil {
		return nil, segmentedErrorf("NewWithSegments", err)
	}

	return &Profile{values: p, segments: duplicateAll(segs)}, nil
}

func duplicateAll(segs []*segment.Segment) []*segment.Segment {
	out := make([]*segment.Segment, len(segs))
	for i, s := range segs {
		out[i] = s.Duplicate()
	}

	return out
}

// Profile returns the underlying samples.
func (sp *Profile) Profile() *profile.Profile { return sp.values }

// Size returns N, the ring size shared by the samples and every segment.
func (sp *Profile) Size() int { return sp.values.Size() }

// SegmentCount returns the number of top-level segments.
func (sp *Profile) SegmentCount() int { return len(sp.segments) }

// IsSegmented reports whether the ring is split into two or more segments.
func (sp *Profile) IsSegmented() bool { return len(sp.segments) > 1 }

// Segments returns deep copies of the partition in ring order, starting at
// the segment the profile was last anchored to by StartFrom.
func (sp *Profile) Segments() []*segment.Segment { return duplicateAll(sp.segments) }

// indexOf returns the position of id in segs, or -1.
func indexOf(segs []*segment.Segment, id segment.ID) int {
	for i, s := range segs {
		if s.ID() == id {
			return i
		}
	}

	return -1
}

// neighbours returns the segments before and after position i. Both are nil
// for a lone segment and the same segment for a two-segment partition.
func neighbours(segs []*segment.Segment, i int) (prev, next *segment.Segment) {
	k := len(segs)
	if k < 2 {
		return nil, nil
	}

	return segs[(i-1+k)%k], segs[(i+1)%k]
}

// Segment returns a copy of the top-level segment with the given id.
func (sp *Profile) Segment(id segment.ID) (*segment.Segment, error) {
	i := indexOf(sp.segments, id)
	if i < 0 {
		return nil, notFound("Segment", id)
	}

	return sp.segments[i].Duplicate(), nil
}

// HasSegment reports whether id names a top-level segment.
func (sp *Profile) HasSegment(id segment.ID) bool { return indexOf(sp.segments, id) >= 0 }

// Name returns the positional name of the i-th segment of a partition.
func Name(i int) string { return fmt.Sprintf("Seg_%d", i) }

// SegmentNames returns the positional names of the partition, in order.
func (sp *Profile) SegmentNames() []string {
	out := make([]string, len(sp.segments))
	for i := range sp.segments {
		out[i] = Name(i)
	}

	return out
}

// SegmentByName returns a copy of the segment with the given positional name.
func (sp *Profile) SegmentByName(name string) (*segment.Segment, error) {
	for i, s := range sp.segments {
		if Name(i) == name {
			return s.Duplicate(), nil
		}
	}

	return nil, notFound("SegmentByName", name)
}

// SegmentIDs returns the ids of the partition, in order.
func (sp *Profile) SegmentIDs() []segment.ID {
	out := make([]segment.ID, len(sp.segments))
	for i, s := range sp.segments {
		out[i] = s.ID()
	}

	return out
}

// containing returns the position of the segment owning index i. A shared
// boundary belongs to the segment that starts there.
func (sp *Profile) containing(i int) int {
	for k, s := range sp.segments {
		if s.Contains(i) && (s.IsWholeRing() || s.End() != i) {
			return k
		}
	}

	return -1
}

// SegmentContaining returns a copy of the segment owning index i.
func (sp *Profile) SegmentContaining(i int) (*segment.Segment, error) {
	k := sp.containing(i)
	if k < 0 {
		return nil, segmentedErrorf("SegmentContaining", fmt.Errorf("%w: %d", profile.ErrOutOfRange, i))
	}

	return sp.segments[k].Duplicate(), nil
}

// rotated returns copies of the partition starting at position i.
func (sp *Profile) rotated(i int) []*segment.Segment {
	k := len(sp.segments)
	out := make([]*segment.Segment, 0, k)
	for j := 0; j < k; j++ {
		out = append(out, sp.segments[(i+j)%k].Duplicate())
	}

	return out
}

// SegmentsFrom returns copies of the partition in ring order starting at id.
func (sp *Profile) SegmentsFrom(id segment.ID) ([]*segment.Segment, error) {
	i := indexOf(sp.segments, id)
	if i < 0 {
		return nil, notFound("SegmentsFrom", id)
	}

	return sp.rotated(i), nil
}

// OrderedSegments returns copies of the partition starting at the segment
// that owns index 0.
func (sp *Profile) OrderedSegments() []*segment.Segment {
	return sp.rotated(sp.containing(0))
}

// Next returns a copy of the segment after id.
func (sp *Profile) Next(id segment.ID) (*segment.Segment, error) {
	i := indexOf(sp.segments, id)
	if i < 0 {
		return nil, notFound("Next", id)
	}
	_, next := neighbours(sp.segments, i)
	if next == nil {
		next = sp.segments[i]
	}

	return next.Duplicate(), nil
}

// Prev returns a copy of the segment before id.
func (sp *Profile) Prev(id segment.ID) (*segment.Segment, error) {
	i := indexOf(sp.segments, id)
	if i < 0 {
		return nil, notFound("Prev", id)
	}
	prev, _ := neighbours(sp.segments, i)
	if prev == nil {
		prev = sp.segments[i]
	}

	return prev.Duplicate(), nil
}

// Displacement returns the absolute difference between the samples at the
// start and end of segment id.
func (sp *Profile) Displacement(id segment.ID) (float64, error) {
	i := indexOf(sp.segments, id)
	if i < 0 {
		return 0, notFound("Displacement", id)
	}
	start, err := sp.values.At(sp.segments[i].Start())
	if err != nil {
		return 0, segmentedErrorf("Displacement", err)
	}
	end, err := sp.values.At(sp.segments[i].End())
	if err != nil {
		return 0, segmentedErrorf("Displacement", err)
	}
	if end > start {
		return end - start, nil
	}

	return start - end, nil
}

// Duplicate returns a deep copy. Samples are immutable and shared.
func (sp *Profile) Duplicate() *Profile {
	return &Profile{values: sp.values, segments: duplicateAll(sp.segments)}
}

// Equal reports whether both samples and partitions are equal.
func (sp *Profile) Equal(o *Profile) bool {
	if sp == nil || o == nil {
		return sp == o
	}
	if !sp.values.Equal(o.values) || len(sp.segments) != len(o.segments) {
		return false
	}
	for i := range sp.segments {
		if !sp.segments[i].Equal(o.segments[i]) {
			return false
		}
	}

	return true
}

// String renders the samples followed by the partition.
func (sp *Profile) String() string {
	var b strings.Builder
	b.WriteString(sp.values.String())
	for _, s := range sp.segments {
		b.WriteString(" ")
		b.WriteString(s.String())
	}

	return b.String()
}
