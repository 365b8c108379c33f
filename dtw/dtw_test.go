package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellprof/dtw"
	"github.com/katalvlaran/cellprof/profile"
)

// TestDistance_EmptyInput verifies that either empty input is rejected.
func TestDistance_EmptyInput(t *testing.T) {
	_, err := dtw.Distance(nil, []float64{1, 2, 3})
	assert.ErrorIs(t, err, dtw.ErrEmptySequence, "empty first sequence should error")

	_, err = dtw.Distance([]float64{1, 2, 3}, []float64{})
	assert.ErrorIs(t, err, dtw.ErrEmptySequence, "empty second sequence should error")
}

// TestDistance_BadOptions ensures invalid option values are rejected.
func TestDistance_BadOptions(t *testing.T) {
	a := []float64{1, 2}
	for name, opt := range map[string]dtw.Option{
		"negative window":  dtw.WithWindow(-1),
		"negative penalty": dtw.WithSlopePenalty(-0.5),
		"NaN penalty":      dtw.WithSlopePenalty(math.NaN()),
		"unknown mode":     dtw.WithMemoryMode(dtw.MemoryMode(7)),
	} {
		_, err := dtw.Distance(a, a, opt)
		assert.ErrorIs(t, err, dtw.ErrBadOption, name)
	}
}

// TestDistance_PathNeedsMatrix ensures WithPath in two-row mode errors.
func TestDistance_PathNeedsMatrix(t *testing.T) {
	_, err := dtw.Distance([]float64{1, 2}, []float64{1, 2}, dtw.WithPath(), dtw.WithMemoryMode(dtw.TwoRows))
	assert.ErrorIs(t, err, dtw.ErrPathNeedsFullMatrix)
}

// TestDistance_Identical checks zero distance and a diagonal path.
func TestDistance_Identical(t *testing.T) {
	a := []float64{0, 1, 2}
	res, err := dtw.Distance(a, a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)
	assert.Nil(t, res.Path, "no path unless requested")

	res, err = dtw.Distance(a, a, dtw.WithPath())
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}}, res.Path)
}

// TestDistance_Stretch aligns a repeated sample with zero cost.
func TestDistance_Stretch(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}

	res, err := dtw.Distance(a, b, dtw.WithPath())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, res.Path)

	res, err = dtw.Distance(a, b, dtw.WithSlopePenalty(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Distance, 1e-12, "one horizontal step is penalised")
}

// TestDistance_MemoryModesAgree compares full-matrix and two-row results.
func TestDistance_MemoryModesAgree(t *testing.T) {
	a := []float64{0.3, 1.7, 2.2, 0.9, -0.4, 1.1, 3.0}
	b := []float64{0.1, 1.5, 2.4, 2.1, 0.8, -0.2, 1.0, 2.7, 2.9}

	for _, w := range []int{0, 2, 4} {
		full, err := dtw.Distance(a, b, dtw.WithWindow(w), dtw.WithSlopePenalty(0.25))
		require.NoError(t, err)
		rows, err := dtw.Distance(a, b, dtw.WithWindow(w), dtw.WithSlopePenalty(0.25), dtw.WithMemoryMode(dtw.TwoRows))
		require.NoError(t, err)
		assert.InDelta(t, full.Distance, rows.Distance, 1e-12, "window %d", w)
	}
}

// TestDistance_Window checks the band never lowers the cost and is widened
// to keep the end reachable.
func TestDistance_Window(t *testing.T) {
	a := []float64{0, 0, 0, 5, 0, 0}
	b := []float64{5, 0, 0, 0, 0, 0}

	free, err := dtw.Distance(a, b)
	require.NoError(t, err)
	banded, err := dtw.Distance(a, b, dtw.WithWindow(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, banded.Distance, free.Distance)

	res, err := dtw.Distance([]float64{1, 2}, []float64{1, 1, 1, 2, 2}, dtw.WithWindow(1))
	require.NoError(t, err)
	assert.False(t, math.IsInf(res.Distance, 1))
	assert.Equal(t, 0.0, res.Distance)
}

func TestParseMemoryMode(t *testing.T) {
	m, err := dtw.ParseMemoryMode("tworows")
	require.NoError(t, err)
	assert.Equal(t, dtw.TwoRows, m)
	assert.Equal(t, "tworows", m.String())

	m, err = dtw.ParseMemoryMode("")
	require.NoError(t, err)
	assert.Equal(t, dtw.FullMatrix, m)

	_, err = dtw.ParseMemoryMode("sparse")
	assert.ErrorIs(t, err, dtw.ErrBadOption)
}

func TestCompareProfiles(t *testing.T) {
	a, err := profile.New([]float64{3, 1, 2, 5, 4, 0, 7, 6})
	require.NoError(t, err)
	b := a.StartFrom(3)

	cmp, err := dtw.CompareProfiles(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, cmp.Offset)
	assert.Equal(t, 0.0, cmp.Distance)

	_, err = dtw.CompareProfiles(a, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)
	_, err = dtw.CompareProfiles(a, b, dtw.WithWindow(-3))
	assert.ErrorIs(t, err, dtw.ErrBadOption)
}
