// SPDX-License-Identifier: MIT

package segment

import "github.com/katalvlaran/cellprof/record"

// ToRecord converts s and its merge sources to the persisted shape.
func (s *Segment) ToRecord() record.Segment {
	r := record.Segment{
		ID:       string(s.id),
		Start:    s.start,
		End:      s.end,
		RingSize: s.ringSize,
		Locked:   s.locked,
	}
	for i := range s.sources {
		r.Children = append(r.Children, s.sources[i].ToRecord())
	}

	return r
}

// FromRecord rebuilds a segment tree, validating every node.
func FromRecord(r record.Segment) (*Segment, error) {
	s, err := New(ID(r.ID), r.Start, r.End, r.RingSize)
	if err != nil {
		return nil, segmentErrorf("FromRecord", err)
	}
	s.locked = r.Locked
	for _, c := range r.Children {
		child, err := FromRecord(c)
		if err != nil {
			return nil, err
		}
		if err := s.AddMergeSource(child); err != nil {
			return nil, segmentErrorf("FromRecord", err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, segmentErrorf("FromRecord", err)
	}

	return s, nil
}
