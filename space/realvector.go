package space

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// RealVectorSpace is a bounded R^n configuration space under the Euclidean
// metric. States are []float64 slices of the space dimension.
type RealVectorSpace struct {
	low, high []float64
	extent    float64
}

// NewRealVector creates a bounded real-vector space from per-axis lower and
// upper bounds.
func NewRealVector(low, high []float64) (*RealVectorSpace, error) {
	if len(low) == 0 || len(low) != len(high) {
		return nil, fmt.Errorf("bounds must be non-empty and of equal length, got %d and %d", len(low), len(high))
	}
	for i := range low {
		if low[i] >= high[i] {
			return nil, fmt.Errorf("axis %d: lower bound %v not below upper bound %v", i, low[i], high[i])
		}
	}
	s := &RealVectorSpace{
		low:  append([]float64(nil), low...),
		high: append([]float64(nil), high...),
	}
	s.extent = floats.Distance(s.low, s.high, 2)
	return s, nil
}

// Dim returns the dimension of the space.
func (s *RealVectorSpace) Dim() int { return len(s.low) }

// NewState allocates a state with the given coordinates.
func (s *RealVectorSpace) NewState(coords ...float64) State {
	if len(coords) != len(s.low) {
		panic(fmt.Sprintf("space: state has %d coordinates, space has dimension %d", len(coords), len(s.low)))
	}
	return append([]float64(nil), coords...)
}

// Coords returns the coordinate slice backing a state of this space.
func (s *RealVectorSpace) Coords(st State) []float64 { return st.([]float64) }

func (s *RealVectorSpace) AllocState() State { return make([]float64, len(s.low)) }

func (s *RealVectorSpace) CopyState(dst, src State) {
	copy(dst.([]float64), src.([]float64))
}

func (s *RealVectorSpace) Distance(a, b State) float64 {
	return floats.Distance(a.([]float64), b.([]float64), 2)
}

func (s *RealVectorSpace) Interpolate(a, b State, t float64, out State) {
	av, bv, ov := a.([]float64), b.([]float64), out.([]float64)
	for i := range ov {
		ov[i] = av[i] + t*(bv[i]-av[i])
	}
}

func (s *RealVectorSpace) SampleUniform(rng *rand.Rand, out State) {
	ov := out.([]float64)
	for i := range ov {
		ov[i] = s.low[i] + rng.Float64()*(s.high[i]-s.low[i])
	}
}

// SampleNear samples uniformly in the axis-aligned box of half-width dist
// around near, clamped to the space bounds, then pulls the result back onto
// the metric ball of radius dist so the returned state is never farther than
// dist from near.
func (s *RealVectorSpace) SampleNear(rng *rand.Rand, out, near State, dist float64) {
	ov, nv := out.([]float64), near.([]float64)
	for i := range ov {
		lo := max(s.low[i], nv[i]-dist)
		hi := min(s.high[i], nv[i]+dist)
		ov[i] = lo + rng.Float64()*(hi-lo)
	}
	if d := floats.Distance(ov, nv, 2); d > dist {
		t := dist / d
		for i := range ov {
			ov[i] = nv[i] + t*(ov[i]-nv[i])
		}
	}
}

func (s *RealVectorSpace) MaxExtent() float64 { return s.extent }
