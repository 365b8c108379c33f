// SPDX-License-Identifier: MIT

package segmented_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellprof/profile"
	"github.com/katalvlaran/cellprof/segment"
	"github.com/katalvlaran/cellprof/segmented"
)

func at(t *testing.T, p *profile.Profile, i int) float64 {
	t.Helper()
	v, err := p.At(i)
	require.NoError(t, err)
	return v
}

func TestStartFrom(t *testing.T) {
	sp := threeWay(t)
	moved := sp.StartFrom(30)

	assert.Equal(t, 30.0, at(t, moved.Profile(), 0))
	b, err := moved.Segment("B")
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 30}, [2]int{b.Start(), b.End()})

	// Every segment still starts on the same sample value.
	for _, id := range sp.SegmentIDs() {
		before, err := sp.Segment(id)
		require.NoError(t, err)
		after, err := moved.Segment(id)
		require.NoError(t, err)
		assert.Equal(t, at(t, sp.Profile(), before.Start()), at(t, moved.Profile(), after.Start()))
	}

	assert.Equal(t, []segment.ID{"B", "C", "A"}, ids(moved.OrderedSegments()))
	assert.Equal(t, []segment.ID{"B", "C", "A"}, ids(moved.Segments()))
	assert.Equal(t, []segment.ID{"B", "C", "A"}, moved.SegmentIDs())
	seg0, err := moved.SegmentByName(segmented.Name(0))
	require.NoError(t, err)
	assert.Equal(t, segment.ID("B"), seg0.ID())
	assert.True(t, moved.StartFrom(-30).Equal(sp))
	assert.Equal(t, n, coverage(moved))
}

func TestOffsetSegments(t *testing.T) {
	sp := threeWay(t)
	moved := sp.OffsetSegments(10)
	assert.True(t, moved.Profile().Equal(sp.Profile()))
	a, err := moved.Segment("A")
	require.NoError(t, err)
	assert.Equal(t, [2]int{10, 40}, [2]int{a.Start(), a.End()})
	assert.True(t, moved.OffsetSegments(-10).Equal(sp))
}

func TestReverse(t *testing.T) {
	sp := threeWay(t)
	r := sp.Reverse()

	assert.Equal(t, []segment.ID{"C", "B", "A"}, r.SegmentIDs())
	a, err := r.Segment("A")
	require.NoError(t, err)
	assert.Equal(t, [2]int{69, 99}, [2]int{a.Start(), a.End()})
	assert.Equal(t, 99.0, at(t, r.Profile(), 0))
	assert.Equal(t, n, coverage(r))

	assert.True(t, r.Reverse().Equal(sp))
}

func TestInterpolate(t *testing.T) {
	sp := threeWay(t)

	doubled, err := sp.Interpolate(2 * n)
	require.NoError(t, err)
	assert.Equal(t, 2*n, doubled.Size())
	for _, id := range sp.SegmentIDs() {
		before, err := sp.Segment(id)
		require.NoError(t, err)
		after, err := doubled.Segment(id)
		require.NoError(t, err)
		assert.Equal(t, 2*before.Start(), after.Start(), "segment %s", id)
	}
	assert.Equal(t, 2*n, coverage(doubled))

	_, err = sp.Interpolate(20)
	assert.ErrorIs(t, err, segment.ErrTooShort)
	_, err = sp.Interpolate(2)
	assert.ErrorIs(t, err, profile.ErrTooShort)
}

// template returns a profile of 2n samples split A[0,100] B[100,150] C[150,0].
func template(t *testing.T) *segmented.Profile {
	t.Helper()
	var segs []*segment.Segment
	for _, b := range []struct {
		id         segment.ID
		start, end int
	}{{"A", 0, 100}, {"B", 100, 150}, {"C", 150, 0}} {
		s, err := segment.New(b.id, b.start, b.end, 2*n)
		require.NoError(t, err)
		segs = append(segs, s)
	}
	p, err := profile.Constant(0, 2*n)
	require.NoError(t, err)
	sp, err := segmented.NewWithSegments(p, segs)
	require.NoError(t, err)
	return sp
}

func TestFrankenNormalise(t *testing.T) {
	sp := threeWay(t)
	tmpl := template(t)

	got, err := sp.FrankenNormalise(tmpl)
	require.NoError(t, err)
	assert.Equal(t, tmpl.Size(), got.Size())
	assert.Equal(t, tmpl.ToRecord().Segments, got.ToRecord().Segments)

	// Each template segment opens on the first sample of the source segment.
	assert.Equal(t, 0.0, at(t, got.Profile(), 0))
	assert.Equal(t, 30.0, at(t, got.Profile(), 100))
	assert.Equal(t, 60.0, at(t, got.Profile(), 150))
}

func TestFrankenNormalise_OwnPartition(t *testing.T) {
	sp := threeWay(t)

	got, err := sp.FrankenNormalise(sp)
	require.NoError(t, err)
	assert.True(t, sp.Equal(got), "got %s", got)

	rotated := sp.StartFrom(17)
	got, err = sp.FrankenNormalise(rotated)
	require.NoError(t, err)
	assert.True(t, rotated.Equal(got), "got %s", got)
}

func TestFrankenNormalise_KeepsShapeInsideSegments(t *testing.T) {
	got, err := threeWay(t).FrankenNormalise(template(t))
	require.NoError(t, err)
	p := got.Profile()

	// A[0,100] stretches source samples 0..30, B[100,150] stretches 30..60.
	for _, r := range [][2]int{{0, 99}, {100, 149}} {
		for i := r[0]; i < r[1]; i++ {
			assert.Less(t, at(t, p, i), at(t, p, i+1), "index %d", i)
		}
	}
	assert.InDelta(t, 29.7, at(t, p, 99), 1e-9)
	assert.InDelta(t, 15.0, at(t, p, 50), 1e-9)
	assert.InDelta(t, 45.0, at(t, p, 125), 1e-9)
	assert.InDelta(t, 59.4, at(t, p, 149), 1e-9)
}

func TestFrankenNormalise_RotatedTemplate(t *testing.T) {
	sp := threeWay(t)
	tmpl := template(t).StartFrom(10)

	got, err := sp.FrankenNormalise(tmpl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, at(t, got.Profile(), 190))
	assert.Equal(t, 30.0, at(t, got.Profile(), 90))
	assert.Equal(t, 60.0, at(t, got.Profile(), 140))
}

func TestFrankenNormalise_Mismatch(t *testing.T) {
	sp := threeWay(t)

	unsegmented, err := segmented.New(ramp(t, 2*n))
	require.NoError(t, err)
	_, err = sp.FrankenNormalise(unsegmented)
	assert.ErrorIs(t, err, segmented.ErrTemplateMismatch)

	renamed := threeWay(t)
	require.NoError(t, renamed.MergeSegments("A", "B", "AB"))
	require.NoError(t, renamed.SplitSegment("AB", 45, "A", "D"))
	_, err = sp.FrankenNormalise(renamed)
	assert.ErrorIs(t, err, segmented.ErrTemplateMismatch)

	_, err = sp.FrankenNormalise(nil)
	assert.ErrorIs(t, err, segmented.ErrNilProfile)
}
