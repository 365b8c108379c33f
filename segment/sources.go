// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"

	"github.com/katalvlaran/cellprof/ring"
)

// AddMergeSource appends a deep copy of src to the merge sources of s.
//
// The source must lie inside s, must not reuse any id already in either
// tree, and must start where the previous source ended (the first source
// starts at s.Start()). WholeRingID may be neither parent nor source.
func (s *Segment) AddMergeSource(src *Segment) error {
	const op = "AddMergeSource"
	if src == nil {
		return segmentErrorf(op, ErrNilSegment)
	}
	if s.id == WholeRingID || src.id == WholeRingID {
		return segmentErrorf(op, ErrReservedID)
	}
	if src.ringSize != s.ringSize {
		return segmentErrorf(op, ErrRingSizeMismatch)
	}

	seen := s.treeIDs()
	for _, id := range src.TreeIDs() {
		if _, dup := seen[id]; dup {
			return segmentErrorf(op, fmt.Errorf("%w: %s", ErrDuplicateID, id))
		}
	}
	if !s.containsArc(src) {
		return segmentErrorf(op, fmt.Errorf("%w: %s in %s", ErrNotContained, src, s))
	}
	want := s.start
	if n := len(s.sources); n > 0 {
		want = s.sources[n-1].end
	}
	if src.start != want {
		return segmentErrorf(op, fmt.Errorf("%w: %s must start at %d", ErrNotAdjacent, src.id, want))
	}

	s.sources = append(s.sources, *src.Duplicate())

	return nil
}

// containsArc reports whether the walk from src.start to src.end stays
// within the walk from s.start to s.end.
func (s *Segment) containsArc(src *Segment) bool {
	offset := ring.Wrap(src.start-s.start, s.ringSize)

	return offset+src.Length() <= s.Length()
}

// treeIDs returns the ids of s and every segment below it as a set.
func (s *Segment) treeIDs() map[ID]struct{} {
	ids := make(map[ID]struct{})
	for _, id := range s.TreeIDs() {
		ids[id] = struct{}{}
	}

	return ids
}

// TreeIDs returns the id of s followed by the ids of all its merge
// sources, depth first.
func (s *Segment) TreeIDs() []ID {
	ids := []ID{s.id}
	for i := range s.sources {
		ids = append(ids, s.sources[i].TreeIDs()...)
	}

	return ids
}

// HasMergeSources reports whether s was formed by merging other segments.
func (s *Segment) HasMergeSources() bool { return len(s.sources) > 0 }

// MergeSources returns deep copies of the direct merge sources, in ring order.
func (s *Segment) MergeSources() []*Segment {
	out := make([]*Segment, len(s.sources))
	for i := range s.sources {
		out[i] = s.sources[i].Duplicate()
	}

	return out
}

// HasMergeSource reports whether id names a merge source anywhere below s.
func (s *Segment) HasMergeSource(id ID) bool {
	_, err := s.MergeSource(id)

	return err == nil
}

// MergeSource returns a deep copy of the merge source with the given id,
// searching the whole tree below s.
func (s *Segment) MergeSource(id ID) (*Segment, error) {
	for i := range s.sources {
		if s.sources[i].id == id {
			return s.sources[i].Duplicate(), nil
		}
		if found, err := s.sources[i].MergeSource(id); err == nil {
			return found, nil
		}
	}

	return nil, segmentErrorf("MergeSource", fmt.Errorf("%w: %s", ErrSourceNotFound, id))
}

// ClearMergeSources drops the provenance tree.
func (s *Segment) ClearMergeSources() { s.sources = nil }

// Validate checks every invariant of s and its merge-source tree.
func (s *Segment) Validate() error {
	if err := checkBounds(s.id, s.start, s.end, s.ringSize); err != nil {
		return segmentErrorf("Validate", err)
	}
	if len(s.sources) == 0 {
		return nil
	}

	// Rebuild the tree through AddMergeSource so the same rules apply.
	probe := &Segment{id: s.id, start: s.start, end: s.end, ringSize: s.ringSize}
	total := 0
	for i := range s.sources {
		if err := s.sources[i].Validate(); err != nil {
			return segmentErrorf("Validate", err)
		}
		if err := probe.AddMergeSource(&s.sources[i]); err != nil {
			return segmentErrorf("Validate", err)
		}
		total += s.sources[i].Length()
	}
	if last := s.sources[len(s.sources)-1]; last.end != s.end ||
		total-(len(s.sources)-1) != s.Length() {
		return segmentErrorf("Validate", fmt.Errorf("%w: sources of %s", ErrCoverage, s.id))
	}

	return nil
}
