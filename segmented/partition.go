// SPDX-License-Identifier: MIT

package segmented

import (
	"fmt"

	"github.com/katalvlaran/cellprof/segment"
)

// commit validates a candidate partition and swaps it in.
func (sp *Profile) commit(op string, segs []*segment.Segment) error {
	if err := segment.ValidatePartition(segs, sp.Size()); err != nil {
		return segmentedErrorf(op, err)
	}
	sp.segments = segs

	return nil
}

// SetSegments replaces the partition with deep copies of segs.
func (sp *Profile) SetSegments(segs []*segment.Segment) error {
	return sp.commit("SetSegments", duplicateAll(segs))
}

// ClearSegments resets the partition to the single whole-ring segment.
func (sp *Profile) ClearSegments() error {
	whole, err := segment.NewWholeRing(sp.Size())
	if err != nil {
		return segmentedErrorf("ClearSegments", err)
	}
	sp.segments = []*segment.Segment{whole}

	return nil
}

// Update moves segment id to [start, end], moving the shared boundaries of
// its neighbours with it. See segment.Update for the rules.
func (sp *Profile) Update(id segment.ID, start, end int) error {
	segs := duplicateAll(sp.segments)
	i := indexOf(segs, id)
	if i < 0 {
		return notFound("Update", id)
	}
	prev, next := neighbours(segs, i)
	if err := segment.Update(segs[i], prev, next, start, end); err != nil {
		return segmentedErrorf("Update", err)
	}

	return sp.commit("Update", segs)
}

// SetLocked sets the lock flag of segment id.
func (sp *Profile) SetLocked(id segment.ID, locked bool) error {
	i := indexOf(sp.segments, id)
	if i < 0 {
		return notFound("SetLocked", id)
	}
	sp.segments[i].SetLocked(locked)

	return nil
}

// SetAllLocked sets the lock flag of every top-level segment.
func (sp *Profile) SetAllLocked(locked bool) {
	for _, s := range sp.segments {
		s.SetLocked(locked)
	}
}

// idsExcept returns every id in the partition trees other than those of the
// segments at the skipped positions.
func idsExcept(segs []*segment.Segment, skip ...int) map[segment.ID]struct{} {
	ids := make(map[segment.ID]struct{})
outer:
	for i, s := range segs {
		for _, k := range skip {
			if i == k {
				continue outer
			}
		}
		for _, id := range s.TreeIDs() {
			ids[id] = struct{}{}
		}
	}

	return ids
}

// MergeSegments replaces two neighbouring segments with a new segment
// newID holding both as merge sources.
func (sp *Profile) MergeSegments(first, second, newID segment.ID) error {
	const op = "MergeSegments"
	i, j := indexOf(sp.segments, first), indexOf(sp.segments, second)
	if i < 0 {
		return notFound(op, first)
	}
	if j < 0 {
		return notFound(op, second)
	}
	k := len(sp.segments)
	if i == j || ((i+1)%k != j && (j+1)%k != i) {
		return segmentedErrorf(op, fmt.Errorf("%w: %w: %s and %s",
			segment.ErrUpdateRejected, segment.ErrNotAdjacent, first, second))
	}
	if _, dup := idsExcept(sp.segments, i, j)[newID]; dup {
		return segmentedErrorf(op, fmt.Errorf("%w: %s", segment.ErrDuplicateID, newID))
	}

	merged, err := segment.Merge(sp.segments[i], sp.segments[j], newID)
	if err != nil {
		return segmentedErrorf(op, err)
	}

	// The merged segment takes the place of whichever source comes first.
	lead := indexOf(sp.segments, merged.MergeSources()[0].ID())
	segs := make([]*segment.Segment, 0, k-1)
	for p, s := range sp.segments {
		switch {
		case p == lead:
			segs = append(segs, merged)
		case p == i || p == j:
		default:
			segs = append(segs, s.Duplicate())
		}
	}

	return sp.commit(op, segs)
}

// UnmergeSegment replaces segment id with its direct merge sources.
func (sp *Profile) UnmergeSegment(id segment.ID) error {
	const op = "UnmergeSegment"
	i := indexOf(sp.segments, id)
	if i < 0 {
		return notFound(op, id)
	}
	s := sp.segments[i]
	if s.IsLocked() {
		return segmentedErrorf(op, fmt.Errorf("%w: %w: %s", segment.ErrUpdateRejected, segment.ErrLocked, id))
	}
	if !s.HasMergeSources() {
		return segmentedErrorf(op, fmt.Errorf("%w: %s has none", segment.ErrSourceNotFound, id))
	}

	segs := make([]*segment.Segment, 0, len(sp.segments)+1)
	for p, other := range sp.segments {
		if p == i {
			segs = append(segs, s.MergeSources()...)
			continue
		}
		segs = append(segs, other.Duplicate())
	}

	return sp.commit(op, segs)
}

// IsSplittable reports whether SplitSegment(id, at, …) would accept the index.
func (sp *Profile) IsSplittable(id segment.ID, at int) bool {
	i := indexOf(sp.segments, id)

	return i >= 0 && sp.segments[i].IsSplittable(at)
}

// SplitSegment replaces segment id with [start, at] and [at, end], named
// first and second. Neither id may be in use by another segment.
func (sp *Profile) SplitSegment(id segment.ID, at int, first, second segment.ID) error {
	const op = "SplitSegment"
	i := indexOf(sp.segments, id)
	if i < 0 {
		return notFound(op, id)
	}
	taken := idsExcept(sp.segments, i)
	for _, newID := range []segment.ID{first, second} {
		if _, dup := taken[newID]; dup {
			return segmentedErrorf(op, fmt.Errorf("%w: %s", segment.ErrDuplicateID, newID))
		}
	}

	a, b, err := segment.Split(sp.segments[i], at, first, second)
	if err != nil {
		return segmentedErrorf(op, err)
	}

	segs := make([]*segment.Segment, 0, len(sp.segments)+1)
	for p, s := range sp.segments {
		if p == i {
			segs = append(segs, a, b)
			continue
		}
		segs = append(segs, s.Duplicate())
	}

	return sp.commit(op, segs)
}
