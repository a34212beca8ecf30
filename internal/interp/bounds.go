package interp

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyAxis is returned when a frame is fitted to an axis with no samples.
var ErrEmptyAxis = errors.New("empty axis")

// paddingShare is the fraction of an axis span added on each side.
const paddingShare = 0.1

// Samples holds every coordinate seen on each axis. Full samples are kept
// rather than running extremes so held coordinates can be carried into a
// fresh baseline after a reset.
type Samples [3][]float64

// Add appends a flat x,y,z,x,y,z... list; coordinate i goes to axis i mod 3.
func (s *Samples) Add(coords []float64) {
	for i, v := range coords {
		s[i%3] = append(s[i%3], v)
	}
}

// Clone returns a deep copy.
func (s Samples) Clone() Samples {
	var c Samples
	for i := range s {
		c[i] = append([]float64(nil), s[i]...)
	}
	return c
}

// Empty reports whether any axis has no samples.
func (s Samples) Empty() bool {
	return len(s[0]) == 0 || len(s[1]) == 0 || len(s[2]) == 0
}

// Len returns the number of samples on the x axis.
func (s Samples) Len() int { return len(s[0]) }

// Fit pads the extremes of samples by the larger of paddingFloor and a
// tenth of the span.
func Fit(samples []float64, paddingFloor float64) (lo, hi float64, err error) {
	if len(samples) == 0 {
		return 0, 0, ErrEmptyAxis
	}
	lo, hi = samples[0], samples[0]
	for _, v := range samples[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	pad := math.Max(paddingFloor, (hi-lo)*paddingShare)
	return lo - pad, hi + pad, nil
}

// FitFrame fits all three axes.
func FitFrame(s Samples, paddingFloor float64) (Frame, error) {
	var f Frame
	var lo, hi [3]float64
	for axis := range s {
		var err error
		lo[axis], hi[axis], err = Fit(s[axis], paddingFloor)
		if err != nil {
			return Frame{}, fmt.Errorf("axis %c: %w", "xyz"[axis], err)
		}
	}
	f.MinX, f.MaxX = lo[0], hi[0]
	f.MinY, f.MaxY = lo[1], hi[1]
	f.MinZ, f.MaxZ = lo[2], hi[2]
	return f, nil
}
