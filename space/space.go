// Package space defines the configuration-space collaborators used by the
// planners in this module: state allocation and metrics, validity and motion
// checking, state sampling, and sampleable goal regions.
package space

import "math/rand"

// State is an opaque point in a configuration space. Only the Space that
// allocated a state knows its layout; everything else treats states as
// values to copy, measure and validate.
type State any

// Space describes a configuration space: state allocation, a distance
// metric, interpolation and raw (validity-unaware) sampling.
type Space interface {
	// AllocState returns a new zero state.
	AllocState() State

	// CopyState copies src into dst. Both must come from this space.
	CopyState(dst, src State)

	// Distance returns the metric distance between two states.
	Distance(a, b State) float64

	// Interpolate writes the state at fraction t in [0,1] along the segment
	// from a to b into out.
	Interpolate(a, b State, t float64, out State)

	// SampleUniform writes a uniform random state within bounds into out.
	SampleUniform(rng *rand.Rand, out State)

	// SampleNear writes a random state at most dist away from near into out.
	SampleNear(rng *rand.Rand, out, near State, dist float64)

	// MaxExtent returns the maximum possible distance between two states.
	MaxExtent() float64
}

// StateValidityFunc reports whether a single state is valid (collision free,
// within constraints). It must be deterministic.
type StateValidityFunc func(State) bool
