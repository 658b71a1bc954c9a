// Package index provides exact radius nearest-neighbor search over planner
// states keyed by integer handles.
package index

import "github.com/xDarkicex/pathplan/space"

// DistanceFunc computes the metric distance between two states.
type DistanceFunc func(a, b space.State) float64

// Index is a nearest-neighbor structure over integer-keyed states. Queries
// must be exact and return keys in a deterministic order given a fixed
// distance function and insertion order.
type Index interface {
	// Add registers a state under the given key. The state must stay
	// unchanged for the lifetime of the index.
	Add(key int, s space.State)

	// NearestR returns the keys of all states within radius of s, in
	// insertion order. The radius is inclusive.
	NearestR(s space.State, radius float64) []int

	// Len returns the number of stored states.
	Len() int

	// Clear removes all states.
	Clear()
}
