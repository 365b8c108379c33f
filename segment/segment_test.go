// SPDX-License-Identifier: MIT

package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellprof/ring"
	"github.com/katalvlaran/cellprof/segment"
)

const n = 100

// mustSegment builds a segment on a ring of n or fails the test.
func mustSegment(t testing.TB, id segment.ID, start, end int) *segment.Segment {
	t.Helper()
	s, err := segment.New(id, start, end, n)
	require.NoError(t, err)
	return s
}

func TestLength(t *testing.T) {
	assert.Equal(t, 21, mustSegment(t, "A", 0, 20).Length())

	wrapped := mustSegment(t, "B", 90, 10)
	assert.Equal(t, 21, wrapped.Length())
	assert.True(t, wrapped.Wraps())

	whole, err := segment.NewWholeRing(n)
	require.NoError(t, err)
	assert.Equal(t, 101, whole.Length())
	assert.True(t, whole.IsWholeRing())
	assert.False(t, whole.Wraps())
	assert.Equal(t, segment.WholeRingID, whole.ID())
}

func TestNew_MinLength(t *testing.T) {
	s, err := segment.New("A", 0, segment.MinLength-1, n)
	require.NoError(t, err)
	assert.Equal(t, segment.MinLength, s.Length())

	_, err = segment.New("A", 0, segment.MinLength-2, n)
	assert.ErrorIs(t, err, segment.ErrTooShort)
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		id         segment.ID
		start, end int
		ringSize   int
		want       error
	}{
		{"empty id", "", 0, 20, n, segment.ErrInvalidID},
		{"reserved id on partial", segment.WholeRingID, 0, 20, n, segment.ErrReservedID},
		{"start off ring", "A", n, 20, n, segment.ErrInvalidRange},
		{"negative end", "A", 0, -1, n, segment.ErrInvalidRange},
		{"bad ring", "A", 0, 0, 0, ring.ErrBadRingSize},
		{"ring too small for whole", "A", 0, 0, 5, segment.ErrTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := segment.New(tc.id, tc.start, tc.end, tc.ringSize)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	s, err := segment.New("A", 0, 98, n)
	require.NoError(t, err, "a lone segment may leave no room for a neighbour")
	assert.Equal(t, 99, s.Length())
	assert.False(t, s.IsWholeRing())

	s, err = segment.New("A", 40, 40, n)
	require.NoError(t, err, "any id may span the whole ring")
	assert.True(t, s.IsWholeRing())
}

func TestContains(t *testing.T) {
	s := mustSegment(t, "A", 90, 10)
	assert.True(t, s.Contains(90))
	assert.True(t, s.Contains(95))
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(10))
	assert.False(t, s.Contains(50))
	assert.False(t, s.Contains(n))
	assert.False(t, s.Contains(-1))
}

func TestIndexes(t *testing.T) {
	s := mustSegment(t, "A", 95, 5)
	assert.Equal(t, []int{95, 96, 97, 98, 99, 0, 1, 2, 3, 4, 5}, s.Indexes())
}

func TestPositions(t *testing.T) {
	s := mustSegment(t, "A", 0, 20)
	assert.Equal(t, 10, s.MidpointIndex())
	assert.Equal(t, 0, mustSegment(t, "B", 90, 10).MidpointIndex())

	i, err := s.ProportionalIndex(0.5)
	require.NoError(t, err)
	assert.Equal(t, 10, i)
	i, err = s.ProportionalIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 20, i)
	_, err = s.ProportionalIndex(1.5)
	assert.ErrorIs(t, err, segment.ErrInvalidRange)

	f, err := s.IndexProportion(10)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/21.0, f, 1e-12)
	_, err = s.IndexProportion(50)
	assert.ErrorIs(t, err, segment.ErrNotContained)

	assert.Equal(t, 5, s.ShortestDistanceToStart(95))
	assert.Equal(t, 25, s.ShortestDistanceToEnd(95))
}

func TestOverlaps(t *testing.T) {
	a := mustSegment(t, "A", 0, 50)
	b := mustSegment(t, "B", 50, 0)
	c := mustSegment(t, "C", 40, 60)
	d := mustSegment(t, "D", 60, 80)

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.OverlapsBeyondEndpoints(b), "partition neighbours share only boundaries")
	assert.True(t, a.OverlapsBeyondEndpoints(c))
	assert.False(t, a.Overlaps(d))
	assert.False(t, a.OverlapsBeyondEndpoints(d))
}

func TestDuplicate_IsDeep(t *testing.T) {
	a := mustSegment(t, "A", 0, 30)
	p := mustSegment(t, "P", 0, 60)
	require.NoError(t, p.AddMergeSource(a))
	require.NoError(t, p.AddMergeSource(mustSegment(t, "B", 30, 60)))

	d := p.Duplicate()
	assert.True(t, d.Equal(p))

	d.SetLocked(true)
	d.ClearMergeSources()
	assert.False(t, p.IsLocked())
	assert.True(t, p.HasMergeSources())
	assert.False(t, d.Equal(p))
}

func TestString(t *testing.T) {
	s := mustSegment(t, "A", 0, 20)
	assert.Equal(t, "A[0,20]/100", s.String())
	s.SetLocked(true)
	assert.Equal(t, "A[0,20]/100 locked", s.String())
}
