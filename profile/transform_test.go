package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellprof/profile"
)

func TestSmooth(t *testing.T) {
	p := mustProfile(t, 0, 3, 0, 3)
	s, err := p.Smooth(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 2, 1}, s.Values())

	flat := mustProfile(t, 4, 4, 4, 4, 4)
	s, err = flat.Smooth(2)
	require.NoError(t, err)
	assert.Equal(t, flat.Values(), s.Values())

	_, err = p.Smooth(0)
	assert.ErrorIs(t, err, profile.ErrBadWindow)
}

func TestStartFrom(t *testing.T) {
	p := ramp(t, 5)
	assert.Equal(t, []float64{2, 3, 4, 0, 1}, p.StartFrom(2).Values())
	assert.Equal(t, []float64{4, 0, 1, 2, 3}, p.StartFrom(-1).Values())
	assert.Equal(t, p.Values(), p.StartFrom(5).Values())
}

func TestStartFrom_RoundTrip(t *testing.T) {
	p := mustProfile(t, 3, 1, 4, 1, 5, 9, 2, 6, 5, 3)
	for k := -25; k <= 25; k++ {
		back := p.StartFrom(k).StartFrom(-k)
		assert.True(t, p.Equal(back), "offset %d must round trip", k)
	}
}

func TestReverse(t *testing.T) {
	p := ramp(t, 4)
	assert.Equal(t, []float64{3, 2, 1, 0}, p.Reverse().Values())
	assert.True(t, p.Equal(p.Reverse().Reverse()))
}

func TestInterpolate(t *testing.T) {
	p := ramp(t, 4)
	up, err := p.Interpolate(8)
	require.NoError(t, err)
	// the final point interpolates back towards index 0
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 1.5}, up.Values())

	same, err := p.Interpolate(4)
	require.NoError(t, err)
	assert.True(t, p.Equal(same))

	down, err := ramp(t, 8).Interpolate(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6}, down.Values())

	_, err = p.Interpolate(profile.MinLength - 1)
	assert.ErrorIs(t, err, profile.ErrTooShort)
}

func TestInterpolateLinear(t *testing.T) {
	p := ramp(t, 4)
	up, err := p.InterpolateLinear(7)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}, up.Values())

	down, err := ramp(t, 7).InterpolateLinear(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6}, down.Values())

	same, err := p.InterpolateLinear(4)
	require.NoError(t, err)
	assert.True(t, p.Equal(same))

	_, err = p.InterpolateLinear(profile.MinLength - 1)
	assert.ErrorIs(t, err, profile.ErrTooShort)
}

func TestSubregion(t *testing.T) {
	p := ramp(t, 10)

	s, err := p.Subregion(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, s.Values())

	s, err = p.Subregion(8, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 9, 0, 1}, s.Values())

	s, err = p.Subregion(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 11, s.Size(), "whole-ring subregion repeats its start sample")

	_, err = p.Subregion(0, 10)
	assert.ErrorIs(t, err, profile.ErrOutOfRange)
	_, err = p.Subregion(-1, 3)
	assert.ErrorIs(t, err, profile.ErrOutOfRange)
}

// span is a minimal profile.Span.
type span struct{ start, end, n int }

func (s span) Start() int    { return s.start }
func (s span) End() int      { return s.end }
func (s span) RingSize() int { return s.n }

func TestSubregionOf(t *testing.T) {
	p := ramp(t, 10)
	s, err := p.SubregionOf(span{start: 9, end: 0, n: 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 0}, s.Values())

	_, err = p.SubregionOf(span{start: 0, end: 5, n: 20})
	assert.ErrorIs(t, err, profile.ErrSizeMismatch)
}

func TestWindow(t *testing.T) {
	p := ramp(t, 10)
	w, err := p.Window(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 9, 0, 1, 2}, w.Values())

	_, err = p.Window(0, 0)
	assert.ErrorIs(t, err, profile.ErrBadWindow)
	_, err = p.Window(10, 1)
	assert.ErrorIs(t, err, profile.ErrOutOfRange)
}

func TestDeltas(t *testing.T) {
	p := ramp(t, 10)
	d, err := p.Deltas(1)
	require.NoError(t, err)
	v := d.Values()
	assert.Equal(t, 2.0, v[5])
	assert.Equal(t, -8.0, v[0], "window wraps across the origin")

	d, err = p.Deltas(2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d.Values()[5])

	_, err = p.Deltas(0)
	assert.ErrorIs(t, err, profile.ErrBadWindow)
}

func TestConcat(t *testing.T) {
	a := mustProfile(t, 1, 2)
	b := mustProfile(t, 3)
	c, err := profile.Concat(a, nil, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, c.Values())

	_, err = profile.Concat()
	assert.ErrorIs(t, err, profile.ErrEmpty)
}
