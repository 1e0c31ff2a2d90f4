package mcpi

import "math"

// Sampler produces sample points in [-1,1]x[-1,1].
type Sampler interface {
	Sample() Point
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func() Point

// Sample calls f().
func (f SamplerFunc) Sample() Point {
	return f()
}

// RandomSampler draws uniformly distributed points from a Source.
//
// Each coordinate is composed as sign * magnitude from two draws: the low
// bit of the first draw selects the sign, the second draw divided by
// math.MaxUint32 gives a magnitude in [0,1].
type RandomSampler struct {
	src Source
}

// NewRandomSampler creates a RandomSampler over src.
func NewRandomSampler(src Source) *RandomSampler {
	return &RandomSampler{src: src}
}

// Sample returns the next uniformly distributed point.
func (s *RandomSampler) Sample() Point {
	x := s.coord()
	y := s.coord()
	return Point{X: x, Y: y}
}

func (s *RandomSampler) coord() float64 {
	sign := 1.0
	if s.src.Uint32()&1 == 0 {
		sign = -1.0
	}
	return sign * (float64(s.src.Uint32()) / math.MaxUint32)
}
