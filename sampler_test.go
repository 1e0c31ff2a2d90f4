package mcpi

import (
	"math"
	"testing"
)

// scriptedSource replays fixed draws.
type scriptedSource struct {
	vals []uint32
	i    int
}

func (s *scriptedSource) Uint32() uint32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestRandomSamplerComposition(t *testing.T) {
	tests := []struct {
		name string
		vals []uint32 // sign, magnitude for x, then for y
		want Point
	}{
		{"positive extremes", []uint32{1, math.MaxUint32, 1, 0}, Pt(1, 0)},
		{"negative extremes", []uint32{0, math.MaxUint32, 2, math.MaxUint32}, Pt(-1, -1)},
		{"sign uses low bit only", []uint32{0xFFFFFFFE, math.MaxUint32, 0xFFFFFFFF, math.MaxUint32}, Pt(-1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRandomSampler(&scriptedSource{vals: tt.vals})
			if got := s.Sample(); got != tt.want {
				t.Errorf("Sample() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRandomSamplerMidpoint(t *testing.T) {
	s := NewRandomSampler(&scriptedSource{vals: []uint32{1, math.MaxUint32 / 2, 0, math.MaxUint32 / 4}})
	p := s.Sample()
	if math.Abs(p.X-0.5) > 1e-9 {
		t.Errorf("X = %v, want ~0.5", p.X)
	}
	if math.Abs(p.Y+0.25) > 1e-9 {
		t.Errorf("Y = %v, want ~-0.25", p.Y)
	}
}

// TestRandomSamplerDistribution checks range and quadrant balance.
func TestRandomSamplerDistribution(t *testing.T) {
	const n = 100000
	s := NewRandomSampler(NewPCGSource(7, 11))

	var quadrants [4]int
	for i := 0; i < n; i++ {
		p := s.Sample()
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
			t.Fatalf("sample %v outside [-1,1]^2", p)
		}
		q := 0
		if p.X >= 0 {
			q |= 1
		}
		if p.Y >= 0 {
			q |= 2
		}
		quadrants[q]++
	}

	// Each quadrant expects n/4 = 25000 with sd ~137; allow 1000.
	for q, c := range quadrants {
		if c < n/4-1000 || c > n/4+1000 {
			t.Errorf("quadrant %d got %d samples, want about %d", q, c, n/4)
		}
	}
}

func TestSamplerFunc(t *testing.T) {
	var s Sampler = SamplerFunc(func() Point { return Pt(0.25, -0.75) })
	if got := s.Sample(); got != Pt(0.25, -0.75) {
		t.Errorf("Sample() = %v, want (0.25, -0.75)", got)
	}
}
