// Package tree implements the density-weighted tree grown by EST-style
// planners: an arena of motions kept in lockstep with a radius
// nearest-neighbor index and a weighted selection distribution, so that
// expansion favors motions in sparse regions of the space.
package tree

import (
	"github.com/xDarkicex/pathplan/internal/index"
	"github.com/xDarkicex/pathplan/internal/pdf"
	"github.com/xDarkicex/pathplan/space"
)

// NoParent marks a root motion.
const NoParent = -1

// Motion is one accepted state in a tree. Motions are addressed by their
// arena id within the owning tree; Parent is the arena id of the motion this
// one was expanded from, NoParent for roots.
type Motion struct {
	State  space.State
	Parent int
	// Root is the root-ancestor state of this motion's chain, used to
	// validate start/goal pairings without walking the chain.
	Root space.State

	elem *pdf.Element[int]
}

// Tree owns one side of a bidirectional search: a motion arena, an exact
// radius index over the motion states, and a weighted sampler over arena
// ids. The three stay in lockstep; motions are only removed in bulk by
// Clear.
type Tree struct {
	motions []*Motion
	index   index.Index
	sel     *pdf.PDF[int]
}

// New creates an empty tree over the given metric.
func New(dist index.DistanceFunc) *Tree {
	return &Tree{
		index: index.NewLinear(dist),
		sel:   pdf.New[int](),
	}
}

// NearestR returns the arena ids of all motions within radius of s, in
// insertion order.
func (t *Tree) NearestR(s space.State, radius float64) []int {
	return t.index.NearestR(s, radius)
}

// Add inserts a motion given the ids of the motions within the neighborhood
// radius of its state, computed before insertion so the motion does not
// count itself. Each neighbor's selection weight decays from w to w/(w+1)
// and the new motion starts at weight 1/(k+1) for k neighbors. Returns the
// new motion's arena id.
func (t *Tree) Add(m *Motion, neighbors []int) int {
	for _, id := range neighbors {
		e := t.motions[id].elem
		w := t.sel.Weight(e)
		t.sel.Update(e, w/(w+1))
	}

	id := len(t.motions)
	m.elem = t.sel.Add(id, 1/float64(len(neighbors)+1))
	t.motions = append(t.motions, m)
	t.index.Add(id, m.State)
	return id
}

// Sample picks a motion id with probability proportional to its selection
// weight. r must be uniform in [0,1). It reports false on an empty tree.
func (t *Tree) Sample(r float64) (int, bool) {
	return t.sel.Sample(r)
}

// Motion returns the motion stored under an arena id.
func (t *Tree) Motion(id int) *Motion { return t.motions[id] }

// Weight returns a motion's current selection weight.
func (t *Tree) Weight(id int) float64 { return t.sel.Weight(t.motions[id].elem) }

// Len returns the number of motions.
func (t *Tree) Len() int { return len(t.motions) }

// Clear discards all motions, index entries and selection weights. Safe to
// call on an empty tree.
func (t *Tree) Clear() {
	t.motions = nil
	t.index.Clear()
	t.sel.Clear()
}
