package space

import (
	"fmt"
	"math"
)

// DefaultSegmentFraction is the fraction of the space extent below which a
// motion segment is assumed valid without intermediate checks.
const DefaultSegmentFraction = 0.01

// Information bundles a space with its validity checker and motion
// resolution. It answers the two oracle questions planners ask: is this
// state valid, and is the segment between two states valid.
type Information struct {
	space         Space
	valid         StateValidityFunc
	segmentLength float64
}

// NewInformation creates space information with the default motion
// resolution. The validity function must not be nil.
func NewInformation(s Space, valid StateValidityFunc) (*Information, error) {
	if s == nil {
		return nil, fmt.Errorf("space must not be nil")
	}
	if valid == nil {
		return nil, fmt.Errorf("state validity function must not be nil")
	}
	return &Information{
		space:         s,
		valid:         valid,
		segmentLength: s.MaxExtent() * DefaultSegmentFraction,
	}, nil
}

// Space returns the underlying configuration space.
func (si *Information) Space() Space { return si.space }

// SetSegmentFraction sets the motion-check resolution as a fraction of the
// space extent. Fractions outside (0,1] are ignored.
func (si *Information) SetSegmentFraction(f float64) {
	if f > 0 && f <= 1 {
		si.segmentLength = si.space.MaxExtent() * f
	}
}

// IsValid reports whether a single state passes the validity checker.
func (si *Information) IsValid(s State) bool { return si.valid(s) }

// Distance returns the metric distance between two states.
func (si *Information) Distance(a, b State) float64 { return si.space.Distance(a, b) }

// MaxExtent returns the maximum possible distance between two states.
func (si *Information) MaxExtent() float64 { return si.space.MaxExtent() }

// CheckMotion reports whether the segment from a to b is valid. The segment
// is subdivided at the configured resolution and every interior state plus
// the endpoint b is checked; a is assumed already validated by the caller.
func (si *Information) CheckMotion(a, b State) bool {
	if !si.valid(b) {
		return false
	}
	steps := int(math.Ceil(si.space.Distance(a, b) / si.segmentLength))
	if steps < 2 {
		return true
	}
	scratch := si.space.AllocState()
	for i := 1; i < steps; i++ {
		si.space.Interpolate(a, b, float64(i)/float64(steps), scratch)
		if !si.valid(scratch) {
			return false
		}
	}
	return true
}
