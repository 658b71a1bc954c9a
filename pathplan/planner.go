package pathplan

import (
	"time"

	"github.com/xDarkicex/pathplan/internal/tree"
	"github.com/xDarkicex/pathplan/space"
)

// Solution is the outcome of a solve call that ran the search.
type Solution struct {
	Status Status
	// Path is the feasible path from start to goal, set only for
	// StatusExactSolution.
	Path *Path
	// Iterations is the number of main-loop iterations this call ran.
	Iterations int
	// States is the total number of states in both trees after this call.
	States int
}

// Solve searches until a solution is found or stop trips. Configuration
// failures (no sampleable goal, no valid start, unsampleable goal region)
// return a *PlannerError carrying the corresponding status; otherwise the
// returned Solution reports StatusExactSolution or StatusTimeout. A nil stop
// means search until solved.
func (p *Planner) Solve(stop Condition) (*Solution, error) {
	started := time.Now()
	if stop == nil {
		stop = Never()
	}

	goal := p.problem.Goal
	if goal == nil {
		p.logger.Error("unknown type of goal")
		p.observeSolve(StatusUnrecognizedGoalType, started)
		return nil, statusError(StatusUnrecognizedGoalType, ErrUnrecognizedGoalType)
	}
	p.resolveRange()

	// Seed the start tree with every valid initial state not yet consumed.
	// A fresh root can already be within bridging distance of the goal tree
	// on repeated solve calls.
	solved := false
	for ; p.nextStart < len(p.problem.Starts); p.nextStart++ {
		st := p.problem.Starts[p.nextStart]
		if !p.si.IsValid(st) {
			p.logger.Warn("skipping invalid initial state", "index", p.nextStart)
			continue
		}
		id := p.addRoot(p.tStart, st, "start")
		if !solved && p.tGoal.Len() > 0 {
			solved = p.tryBridge(true, id)
		}
	}
	if p.tStart.Len() == 0 {
		p.logger.Error("there are no valid initial states")
		p.observeSolve(StatusInvalidStart, started)
		return nil, statusError(StatusInvalidStart, ErrInvalidStart)
	}
	if !goal.CouldSample() {
		p.logger.Error("insufficient states in sampleable goal region")
		p.observeSolve(StatusInvalidGoal, started)
		return nil, statusError(StatusInvalidGoal, ErrInvalidGoal)
	}

	if p.sampler == nil {
		p.sampler = space.NewValidSampler(p.si, p.rng, p.cfg.SampleAttempts)
	}

	p.logger.Info("starting planning",
		"states", p.tStart.Len()+p.tGoal.Len(),
		"range", p.maxDistance)

	xstate := p.si.Space().AllocState()
	startTree := true
	iterations := 0

	for !stop() && !solved {
		iterations++
		if p.metrics != nil {
			p.metrics.Iterations.Inc()
		}

		// Keep the goal tree fed: blocking for the very first goal state,
		// then one non-blocking sample whenever fewer than half the goal
		// tree came straight from the region.
		if p.tGoal.Len() == 0 || goal.SampledCount() < p.tGoal.Len()/2 {
			var st space.State
			var ok bool
			if p.tGoal.Len() == 0 {
				st, ok = goal.NextSample(true, func() bool { return stop() })
			} else {
				st, ok = goal.NextSample(false, nil)
			}
			if ok && p.si.IsValid(st) {
				id := p.addRoot(p.tGoal, st, "goal")
				solved = p.tryBridge(false, id)
			}
			if p.tGoal.Len() == 0 {
				p.logger.Error("unable to sample any valid states for goal tree")
				break
			}
			if solved {
				break
			}
		}

		t := p.tGoal
		fromStart := startTree
		if fromStart {
			t = p.tStart
		}

		// Select a state to expand from, biased toward sparse regions.
		seedID, ok := t.Sample(p.rng.Float64())
		if !ok {
			continue
		}
		seed := t.Motion(seedID)

		// Sample a candidate in the seed's neighborhood.
		if !p.sampler.SampleNear(xstate, seed.State, p.maxDistance) {
			continue
		}

		// Reject the candidate with probability proportional to the local
		// density of the tree around it.
		neighbors := t.NearestR(xstate, p.nbrRadius)
		if k := len(neighbors); k > 0 && p.rng.Float64() < rejectionProbability(k) {
			if p.metrics != nil {
				p.metrics.DensityRejections.Inc()
			}
			continue
		}

		if p.checkMotion(seed.State, xstate) {
			st := p.si.Space().AllocState()
			p.si.Space().CopyState(st, xstate)
			id := t.Add(&tree.Motion{State: st, Parent: seedID, Root: seed.Root}, neighbors)
			if p.metrics != nil {
				p.metrics.StatesCreated.WithLabelValues(sideName(fromStart)).Inc()
			}
			solved = p.tryBridge(fromStart, id)
		}

		// Swap trees for the next iteration.
		p.recordSide(fromStart)
		startTree = !startTree
	}

	status := StatusTimeout
	var path *Path
	if solved {
		status = StatusExactSolution
		path = p.buildPath()
	}

	p.logger.Info("finished planning",
		"status", status.String(),
		"iterations", iterations,
		"start_states", p.tStart.Len(),
		"goal_states", p.tGoal.Len())
	p.observeSolve(status, started)

	return &Solution{
		Status:     status,
		Path:       path,
		Iterations: iterations,
		States:     p.tStart.Len() + p.tGoal.Len(),
	}, nil
}

// addRoot copies st into a fresh root motion of t, inserting it with the
// density bookkeeping every motion gets.
func (p *Planner) addRoot(t *tree.Tree, st space.State, side string) int {
	owned := p.si.Space().AllocState()
	p.si.Space().CopyState(owned, st)
	m := &tree.Motion{State: owned, Parent: tree.NoParent, Root: owned}
	id := t.Add(m, t.NearestR(owned, p.nbrRadius))
	if p.metrics != nil {
		p.metrics.StatesCreated.WithLabelValues(side).Inc()
	}
	return id
}

// tryBridge scans the opposite tree within the full expansion distance of
// the just-inserted motion and records the first neighbor whose root pairing
// is acceptable and whose bridging motion is valid.
func (p *Planner) tryBridge(fromStart bool, id int) bool {
	t, other := p.tGoal, p.tStart
	if fromStart {
		t, other = p.tStart, p.tGoal
	}
	m := t.Motion(id)
	for _, nid := range other.NearestR(m.State, p.maxDistance) {
		nb := other.Motion(nid)
		sRoot, gRoot := m.Root, nb.Root
		if !fromStart {
			sRoot, gRoot = nb.Root, m.Root
		}
		if !p.problem.Goal.IsStartGoalPairValid(sRoot, gRoot) {
			continue
		}
		if !p.checkMotion(m.State, nb.State) {
			continue
		}
		if fromStart {
			p.conn = &connection{startID: id, goalID: nid}
		} else {
			p.conn = &connection{startID: nid, goalID: id}
		}
		return true
	}
	return false
}

// rejectionProbability is the chance a candidate with k in-radius neighbors
// is discarded before motion checking. An empty neighborhood never rejects;
// the probability grows toward one as the region fills.
func rejectionProbability(k int) float64 {
	if k == 0 {
		return 0
	}
	return 1.0 - 1.0/float64(k)
}

func (p *Planner) checkMotion(a, b space.State) bool {
	if p.metrics != nil {
		p.metrics.MotionChecks.Inc()
	}
	return p.si.CheckMotion(a, b)
}

// resolveRange derives the expansion distance and the neighborhood radius.
// The neighborhood radius is kept smaller than the sampling range so
// density-rejection probabilities do not saturate.
func (p *Planner) resolveRange() {
	p.maxDistance = p.cfg.Range
	if p.maxDistance < 1e-3 {
		p.maxDistance = p.si.MaxExtent() * selfConfigRangeFraction
		p.logger.Debug("self-configured range", "range", p.maxDistance)
	}
	p.nbrRadius = p.maxDistance / 3
}

const sideTraceCap = 8192

func (p *Planner) recordSide(fromStart bool) {
	if len(p.sideTrace) >= sideTraceCap {
		return
	}
	if fromStart {
		p.sideTrace = append(p.sideTrace, 's')
	} else {
		p.sideTrace = append(p.sideTrace, 'g')
	}
}

func (p *Planner) observeSolve(status Status, started time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.Solves.WithLabelValues(status.String()).Inc()
	p.metrics.SolveDuration.Observe(time.Since(started).Seconds())
}

func sideName(fromStart bool) string {
	if fromStart {
		return "start"
	}
	return "goal"
}
