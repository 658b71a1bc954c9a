package index

import "github.com/xDarkicex/pathplan/space"

// Linear is a brute-force Index. States are opaque behind the distance
// metric, which rules out coordinate-partitioning structures, and the
// density-rejection rule needs exact radius counts; a linear scan gives both
// and is fast at planner tree sizes.
type Linear struct {
	dist   DistanceFunc
	keys   []int
	states []space.State
}

// NewLinear creates a linear-scan index over the given metric.
func NewLinear(dist DistanceFunc) *Linear {
	return &Linear{dist: dist}
}

func (l *Linear) Add(key int, s space.State) {
	l.keys = append(l.keys, key)
	l.states = append(l.states, s)
}

func (l *Linear) NearestR(s space.State, radius float64) []int {
	var out []int
	for i, st := range l.states {
		if l.dist(s, st) <= radius {
			out = append(out, l.keys[i])
		}
	}
	return out
}

func (l *Linear) Len() int { return len(l.keys) }

func (l *Linear) Clear() {
	l.keys = nil
	l.states = nil
}
