// SPDX-License-Identifier: MIT

package segmented

import (
	"fmt"

	"github.com/katalvlaran/cellprof/profile"
	"github.com/katalvlaran/cellprof/segment"
)

// StartFrom returns a profile whose index 0 is the current index k. Every
// segment moves by -k, so segments still cover the same samples, and the
// partition is re-anchored to begin at the segment owning the new index 0.
func (sp *Profile) StartFrom(k int) *Profile {
	out := &Profile{values: sp.values.StartFrom(k), segments: make([]*segment.Segment, len(sp.segments))}
	for i, s := range sp.segments {
		out.segments[i] = s.Offset(-k)
	}
	out.segments = out.rotated(out.containing(0))

	return out
}

// OffsetSegments returns a profile with the same samples and every segment
// moved by k positions.
func (sp *Profile) OffsetSegments(k int) *Profile {
	out := &Profile{values: sp.values, segments: make([]*segment.Segment, len(sp.segments))}
	for i, s := range sp.segments {
		out.segments[i] = s.Offset(k)
	}

	return out
}

// Reverse returns the profile with sample order reversed. Each segment is
// mirrored with segment.Reverse and the partition order flipped, so the
// partition still runs forward around the ring.
func (sp *Profile) Reverse() *Profile {
	k := len(sp.segments)
	out := &Profile{values: sp.values.Reverse(), segments: make([]*segment.Segment, k)}
	for i, s := range sp.segments {
		out.segments[k-1-i] = s.Reverse()
	}

	return out
}

// Interpolate resamples the profile to n samples. Each segment boundary i
// moves to round(n·i/N); the call fails if any segment would fall below
// segment.MinLength.
func (sp *Profile) Interpolate(n int) (*Profile, error) {
	const op = "Interpolate"
	values, err := sp.values.Interpolate(n)
	if err != nil {
		return nil, segmentedErrorf(op, err)
	}

	segs := make([]*segment.Segment, len(sp.segments))
	for i, s := range sp.segments {
		if segs[i], err = s.Scale(n); err != nil {
			return nil, segmentedErrorf(op, err)
		}
	}
	if err := segment.ValidatePartition(segs, n); err != nil {
		return nil, segmentedErrorf(op, err)
	}

	return &Profile{values: values, segments: segs}, nil
}

// FrankenNormalise resamples each segment of sp to the length of the
// template segment with the same id and joins the pieces in the template's
// order. Each piece runs from the segment's start up to, but not including,
// its end sample, which opens the next piece. The result has the template's
// size and a copy of the template's partition.
func (sp *Profile) FrankenNormalise(template *Profile) (*Profile, error) {
	const op = "FrankenNormalise"
	if template == nil {
		return nil, segmentedErrorf(op, ErrNilProfile)
	}
	if err := sameIDs(sp, template); err != nil {
		return nil, segmentedErrorf(op, err)
	}

	parts := make([]*profile.Profile, 0, len(template.segments))
	for _, t := range template.segments {
		own := sp.segments[indexOf(sp.segments, t.ID())]
		sub, err := sp.values.SubregionOf(own)
		if err != nil {
			return nil, segmentedErrorf(op, err)
		}
		stretched, err := sub.InterpolateLinear(t.Length())
		if err != nil {
			return nil, segmentedErrorf(op, err)
		}
		part, err := stretched.Subregion(0, t.Length()-2)
		if err != nil {
			return nil, segmentedErrorf(op, err)
		}
		parts = append(parts, part)
	}

	joined, err := profile.Concat(parts...)
	if err != nil {
		return nil, segmentedErrorf(op, err)
	}
	if joined.Size() != template.Size() {
		return nil, segmentedErrorf(op, fmt.Errorf("%w: %d, want %d", ErrLengthMismatch, joined.Size(), template.Size()))
	}

	// joined begins at the first template segment; line it up with index 0.
	values := joined.StartFrom(-template.segments[0].Start())

	return &Profile{values: values, segments: duplicateAll(template.segments)}, nil
}

// sameIDs checks that a and b partition their rings into segments with the
// same set of ids.
func sameIDs(a, b *Profile) error {
	if len(a.segments) != len(b.segments) {
		return fmt.Errorf("%w: %d segments, template has %d", ErrTemplateMismatch, len(a.segments), len(b.segments))
	}
	for _, s := range b.segments {
		if indexOf(a.segments, s.ID()) < 0 {
			return fmt.Errorf("%w: %s missing", ErrTemplateMismatch, s.ID())
		}
	}

	return nil
}
