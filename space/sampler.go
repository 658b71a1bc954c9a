package space

import "math/rand"

// DefaultSampleAttempts is how many raw samples a ValidSampler draws before
// reporting failure.
const DefaultSampleAttempts = 100

// ValidSampler produces valid states by rejection sampling over a space's
// raw samplers.
type ValidSampler struct {
	si       *Information
	rng      *rand.Rand
	attempts int
}

// NewValidSampler creates a valid-state sampler. attempts <= 0 selects
// DefaultSampleAttempts.
func NewValidSampler(si *Information, rng *rand.Rand, attempts int) *ValidSampler {
	if attempts <= 0 {
		attempts = DefaultSampleAttempts
	}
	return &ValidSampler{si: si, rng: rng, attempts: attempts}
}

// Sample writes a valid uniform state into out, reporting failure when the
// attempt budget is exhausted.
func (vs *ValidSampler) Sample(out State) bool {
	for i := 0; i < vs.attempts; i++ {
		vs.si.space.SampleUniform(vs.rng, out)
		if vs.si.valid(out) {
			return true
		}
	}
	return false
}

// SampleNear writes a valid state at most dist away from near into out,
// reporting failure when the attempt budget is exhausted.
func (vs *ValidSampler) SampleNear(out, near State, dist float64) bool {
	for i := 0; i < vs.attempts; i++ {
		vs.si.space.SampleNear(vs.rng, out, near, dist)
		if vs.si.valid(out) {
			return true
		}
	}
	return false
}
