// SPDX-License-Identifier: MIT

package segmented

import (
	"github.com/katalvlaran/cellprof/profile"
	"github.com/katalvlaran/cellprof/record"
	"github.com/katalvlaran/cellprof/segment"
)

// ToRecord converts sp to the persisted shape.
func (sp *Profile) ToRecord() record.SegmentedProfile {
	r := record.SegmentedProfile{
		Samples:  sp.values.Values(),
		Segments: make([]record.Segment, len(sp.segments)),
	}
	for i, s := range sp.segments {
		r.Segments[i] = s.ToRecord()
	}

	return r
}

// FromRecord rebuilds a segmented profile, validating samples, every segment
// tree and the partition. A record without segments is unsegmented.
func FromRecord(r record.SegmentedProfile) (*Profile, error) {
	values, err := profile.New(r.Samples)
	if err != nil {
		return nil, segmentedErrorf("FromRecord", err)
	}
	if len(r.Segments) == 0 {
		return New(values)
	}

	segs := make([]*segment.Segment, len(r.Segments))
	for i, rs := range r.Segments {
		if segs[i], err = segment.FromRecord(rs); err != nil {
			return nil, segmentedErrorf("FromRecord", err)
		}
	}
	if err := segment.ValidatePartition(segs, values.Size()); err != nil {
		return nil, segmentedErrorf("FromRecord", err)
	}

	return &Profile{values: values, segments: segs}, nil
}
