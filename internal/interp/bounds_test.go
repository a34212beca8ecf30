package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitSinglePointUsesFloor(t *testing.T) {
	lo, hi, err := Fit([]float64{0}, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, -0.1, lo, 1e-12)
	assert.InDelta(t, 0.1, hi, 1e-12)
}

func TestFitProportionalPadding(t *testing.T) {
	lo, hi, err := Fit([]float64{0, 10, 4}, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, -1, lo, 1e-12)
	assert.InDelta(t, 11, hi, 1e-12)
}

func TestFitEmptyAxis(t *testing.T) {
	_, _, err := Fit(nil, 0.1)
	assert.ErrorIs(t, err, ErrEmptyAxis)

	var s Samples
	s[0] = []float64{1}
	_, err = FitFrame(s, 0.1)
	assert.ErrorIs(t, err, ErrEmptyAxis)
}

func TestSamplesAddAndClone(t *testing.T) {
	var s Samples
	assert.True(t, s.Empty())
	s.Add([]float64{1, 2, 3, 4, 5, 6})
	assert.False(t, s.Empty())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{1, 4}, s[0])
	assert.Equal(t, []float64{2, 5}, s[1])
	assert.Equal(t, []float64{3, 6}, s[2])

	c := s.Clone()
	c.Add([]float64{7, 8, 9})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, c.Len())
}

func TestFitFrame(t *testing.T) {
	var s Samples
	s.Add([]float64{0, 0, 0, 2, 4, 6})
	f, err := FitFrame(s, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, f.MinX, 1e-12)
	assert.InDelta(t, 2.2, f.MaxX, 1e-12)
	assert.InDelta(t, -0.4, f.MinY, 1e-12)
	assert.InDelta(t, 4.4, f.MaxY, 1e-12)
	assert.InDelta(t, -0.6, f.MinZ, 1e-12)
	assert.InDelta(t, 6.6, f.MaxZ, 1e-12)
	c := f.Center()
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, 3.0, c.Z, 1e-12)
}
