package pathplan

import (
	"github.com/xDarkicex/pathplan/internal/tree"
	"github.com/xDarkicex/pathplan/space"
)

// Path is a feasible sequence of states from a start state to a goal state.
// Every consecutive pair was accepted by the motion validity oracle.
type Path struct {
	states []space.State
}

// States returns the path states in order. The slice is owned by the path.
func (p *Path) States() []space.State { return p.states }

// Len returns the number of states.
func (p *Path) Len() int { return len(p.states) }

// Length returns the metric length of the path.
func (p *Path) Length(si *space.Information) float64 {
	total := 0.0
	for i := 1; i < len(p.states); i++ {
		total += si.Distance(p.states[i-1], p.states[i])
	}
	return total
}

// buildPath splices the two parent chains meeting at the recorded
// connection: the start-side chain reversed (root first), then the
// goal-side chain as is (root last). This is the only place parent links
// are walked.
func (p *Planner) buildPath() *Path {
	var rev []space.State
	for id := p.conn.startID; id != tree.NoParent; id = p.tStart.Motion(id).Parent {
		rev = append(rev, p.tStart.Motion(id).State)
	}

	states := make([]space.State, 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		states = append(states, rev[i])
	}
	for id := p.conn.goalID; id != tree.NoParent; id = p.tGoal.Motion(id).Parent {
		states = append(states, p.tGoal.Motion(id).State)
	}
	return &Path{states: states}
}
