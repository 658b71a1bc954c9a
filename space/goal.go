package space

import "time"

// Goal is a sampleable goal region. A planner that requires sampling refuses
// to run against anything that does not satisfy this interface.
type Goal interface {
	// CouldSample reports whether the region can ever produce a sample.
	CouldSample() bool

	// NextSample returns one goal state. When block is true the call may
	// wait for a sample to become available, polling stop and giving up once
	// it reports true; stop may be nil for non-blocking calls. The returned
	// state remains owned by the goal; callers must copy it.
	NextSample(block bool, stop func() bool) (State, bool)

	// SampledCount returns how many samples have been handed out so far.
	SampledCount() int

	// IsStartGoalPairValid reports whether a path from start to goal is an
	// acceptable solution.
	IsStartGoalPairValid(start, goal State) bool
}

// GoalStates is a Goal backed by an explicit list of goal states, handed out
// round-robin. PairValid, when set, restricts which start/goal root pairings
// count as solutions; unset means any pairing is acceptable.
type GoalStates struct {
	// PairValid, when non-nil, overrides the default pair acceptance.
	PairValid func(start, goal State) bool

	space   Space
	states  []State
	next    int
	sampled int
}

// NewGoalStates creates a goal region holding copies of the given states.
func NewGoalStates(s Space, states ...State) *GoalStates {
	g := &GoalStates{space: s}
	for _, st := range states {
		g.Add(st)
	}
	return g
}

// Add copies one more state into the goal region.
func (g *GoalStates) Add(st State) {
	owned := g.space.AllocState()
	g.space.CopyState(owned, st)
	g.states = append(g.states, owned)
}

func (g *GoalStates) CouldSample() bool { return len(g.states) > 0 }

func (g *GoalStates) NextSample(block bool, stop func() bool) (State, bool) {
	if len(g.states) == 0 {
		if !block {
			return nil, false
		}
		for len(g.states) == 0 {
			if stop != nil && stop() {
				return nil, false
			}
			time.Sleep(time.Millisecond)
		}
	}
	st := g.states[g.next%len(g.states)]
	g.next++
	g.sampled++
	return st, true
}

func (g *GoalStates) SampledCount() int { return g.sampled }

func (g *GoalStates) IsStartGoalPairValid(start, goal State) bool {
	if g.PairValid != nil {
		return g.PairValid(start, goal)
	}
	return true
}
