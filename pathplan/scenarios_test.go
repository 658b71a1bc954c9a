package pathplan_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/pathplan/pathplan"
	"github.com/xDarkicex/pathplan/space"
)

func newSpace(t *testing.T) *space.RealVectorSpace {
	t.Helper()
	s, err := space.NewRealVector([]float64{0, 0}, []float64{10, 10})
	require.NoError(t, err)
	return s
}

func newInfo(t *testing.T, s *space.RealVectorSpace, valid space.StateValidityFunc) *space.Information {
	t.Helper()
	si, err := space.NewInformation(s, valid)
	require.NoError(t, err)
	return si
}

func allValid(space.State) bool { return true }

func TestTrivialConnect(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)

	start := s.NewState(1, 1)
	goalState := s.NewState(1.5, 1)
	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{start},
		Goal:   space.NewGoalStates(s, goalState),
	}, pathplan.WithRange(2.0), pathplan.WithSeed(1))
	require.NoError(t, err)

	sol, err := p.Solve(pathplan.Never())
	require.NoError(t, err)
	require.Equal(t, pathplan.StatusExactSolution, sol.Status)
	require.NotNil(t, sol.Path)

	// Start root and goal root bridge directly: path is exactly [A, B].
	states := sol.Path.States()
	require.Len(t, states, 2)
	assert.Equal(t, s.Coords(start), s.Coords(states[0]))
	assert.Equal(t, s.Coords(goalState), s.Coords(states[1]))
	assert.Equal(t, 1, sol.Iterations)
	assert.Equal(t, 2, sol.States)
}

func TestNoValidStarts(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, func(space.State) bool { return false })

	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   space.NewGoalStates(s, s.NewState(9, 9)),
	}, pathplan.WithSeed(1))
	require.NoError(t, err)

	sol, err := p.Solve(pathplan.Never())
	require.Nil(t, sol)
	require.ErrorIs(t, err, pathplan.ErrInvalidStart)

	var perr *pathplan.PlannerError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pathplan.StatusInvalidStart, perr.Status)

	// The main loop never ran: no vertices at all.
	assert.Empty(t, p.Data().Vertices)
}

func TestUnrecognizedGoalType(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)

	p, err := pathplan.New(si, &pathplan.Problem{Starts: []space.State{s.NewState(1, 1)}})
	require.NoError(t, err)

	_, err = p.Solve(pathplan.Never())
	require.ErrorIs(t, err, pathplan.ErrUnrecognizedGoalType)
}

func TestInvalidGoal(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)

	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   space.NewGoalStates(s), // sampleable kind, but empty
	})
	require.NoError(t, err)

	_, err = p.Solve(pathplan.Never())
	require.ErrorIs(t, err, pathplan.ErrInvalidGoal)
}

func TestImmediateTimeout(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)

	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   space.NewGoalStates(s, s.NewState(9, 9)),
	}, pathplan.WithSeed(1))
	require.NoError(t, err)

	sol, err := p.Solve(func() bool { return true })
	require.NoError(t, err)
	assert.Equal(t, pathplan.StatusTimeout, sol.Status)
	assert.Nil(t, sol.Path)
	assert.Zero(t, sol.Iterations)
	// Only the seeded start state exists.
	assert.Equal(t, 1, sol.States)
}

// exhaustedGoal claims it could sample but never produces a state.
type exhaustedGoal struct{}

func (exhaustedGoal) CouldSample() bool { return true }
func (exhaustedGoal) NextSample(bool, func() bool) (space.State, bool) {
	return nil, false
}
func (exhaustedGoal) SampledCount() int                          { return 0 }
func (exhaustedGoal) IsStartGoalPairValid(_, _ space.State) bool { return true }

func TestGoalTreeExhaustion(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)

	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   exhaustedGoal{},
	}, pathplan.WithSeed(1))
	require.NoError(t, err)

	sol, err := p.Solve(pathplan.Never())
	require.NoError(t, err)
	assert.Equal(t, pathplan.StatusTimeout, sol.Status)
	assert.Equal(t, 1, sol.Iterations)
}

func corridorWorld(t *testing.T) (*space.RealVectorSpace, *space.Information) {
	t.Helper()
	s := newSpace(t)
	// A wall across x in (4,6) with a passage at y in (4,6).
	valid := func(st space.State) bool {
		c := st.([]float64)
		if c[0] > 4 && c[0] < 6 {
			return c[1] > 4 && c[1] < 6
		}
		return true
	}
	return s, newInfo(t, s, valid)
}

func TestCorridorSolveAndPathValidity(t *testing.T) {
	s, si := corridorWorld(t)

	start := s.NewState(1, 1)
	goalState := s.NewState(9, 9)
	goal := space.NewGoalStates(s, goalState)
	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{start},
		Goal:   goal,
	}, pathplan.WithRange(1.5), pathplan.WithSeed(7))
	require.NoError(t, err)

	sol, err := p.Solve(pathplan.After(30 * time.Second))
	require.NoError(t, err)
	require.Equal(t, pathplan.StatusExactSolution, sol.Status)
	require.NotNil(t, sol.Path)

	states := sol.Path.States()
	require.GreaterOrEqual(t, len(states), 2)

	// Endpoints: true start first, a goal root last.
	assert.Equal(t, s.Coords(start), s.Coords(states[0]))
	assert.Equal(t, s.Coords(goalState), s.Coords(states[len(states)-1]))
	assert.True(t, goal.IsStartGoalPairValid(states[0], states[len(states)-1]))

	// Every state valid, every consecutive motion accepted by the oracle,
	// every step within the expansion range.
	for i, st := range states {
		assert.True(t, si.IsValid(st), "state %d invalid", i)
		if i > 0 {
			assert.True(t, si.CheckMotion(states[i-1], st), "motion %d invalid", i)
			assert.LessOrEqual(t, si.Distance(states[i-1], st), 1.5+1e-9, "step %d too long", i)
		}
	}
	assert.Greater(t, sol.Path.Length(si), si.Distance(start, goalState)-1e-9,
		"path through the corridor cannot be shorter than the straight line")
}

func TestPlannerDataExport(t *testing.T) {
	s, si := corridorWorld(t)

	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   space.NewGoalStates(s, s.NewState(9, 9)),
	}, pathplan.WithRange(1.5), pathplan.WithSeed(7))
	require.NoError(t, err)

	sol, err := p.Solve(pathplan.After(30 * time.Second))
	require.NoError(t, err)
	require.Equal(t, pathplan.StatusExactSolution, sol.Status)

	data := p.Data()
	require.Len(t, data.Vertices, sol.States)

	// Start-tree vertices first, goal-tree after; one root per side here, so
	// edges must number vertices minus two plus the bridge.
	firstGoal := -1
	for i, v := range data.Vertices {
		require.Contains(t, []int{pathplan.TagStartTree, pathplan.TagGoalTree}, v.Tag)
		if v.Tag == pathplan.TagGoalTree && firstGoal == -1 {
			firstGoal = i
		}
		if firstGoal != -1 {
			require.Equal(t, pathplan.TagGoalTree, v.Tag, "goal vertices must follow start vertices")
		}
	}
	require.NotEqual(t, -1, firstGoal)

	bridge := data.Edges[len(data.Edges)-1]
	assert.Less(t, bridge.From, firstGoal, "bridge must leave the start tree")
	assert.GreaterOrEqual(t, bridge.To, firstGoal, "bridge must enter the goal tree")

	startEdges, goalEdges := 0, 0
	for _, e := range data.Edges[:len(data.Edges)-1] {
		from, to := data.Vertices[e.From], data.Vertices[e.To]
		require.Equal(t, from.Tag, to.Tag, "tree edges stay within one side")
		if from.Tag == pathplan.TagStartTree {
			startEdges++
			assert.Less(t, e.From, e.To, "start-side edges point parent to child")
		} else {
			goalEdges++
			assert.Greater(t, e.From, e.To, "goal-side edges are reversed")
		}
	}

	// One start root, so every other start vertex contributes an edge. The
	// goal tree may hold several roots from replenishment, so it has at
	// least one fewer edge than vertices.
	assert.Equal(t, firstGoal-1, startEdges)
	goalCount := len(data.Vertices) - firstGoal
	assert.Less(t, goalEdges, goalCount)
}

func TestClearIsIdempotent(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)

	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   space.NewGoalStates(s, s.NewState(1.5, 1)),
	}, pathplan.WithRange(2.0), pathplan.WithSeed(1))
	require.NoError(t, err)

	// Clearing before any solve, and clearing twice, must both be no-ops.
	p.Clear()
	p.Clear()
	assert.Empty(t, p.Data().Vertices)
	assert.Empty(t, p.Data().Edges)

	sol, err := p.Solve(pathplan.Never())
	require.NoError(t, err)
	require.Equal(t, pathplan.StatusExactSolution, sol.Status)

	// Clearing after a solve drops the trees and the connection record, and
	// the planner solves again from scratch.
	p.Clear()
	assert.Empty(t, p.Data().Vertices)
	assert.Empty(t, p.Data().Edges)

	sol, err = p.Solve(pathplan.Never())
	require.NoError(t, err)
	assert.Equal(t, pathplan.StatusExactSolution, sol.Status)
}

func TestTreesPersistAcrossSolves(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)

	goal := space.NewGoalStates(s, s.NewState(9, 9))
	goal.PairValid = func(_, _ space.State) bool { return false }
	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   goal,
	}, pathplan.WithRange(1.0), pathplan.WithSeed(3))
	require.NoError(t, err)

	iters := 0
	first, err := p.Solve(func() bool { iters++; return iters > 50 })
	require.NoError(t, err)
	require.Equal(t, pathplan.StatusTimeout, first.Status)

	iters = 0
	second, err := p.Solve(func() bool { iters++; return iters > 50 })
	require.NoError(t, err)
	assert.GreaterOrEqual(t, second.States, first.States,
		"trees must keep growing across solve calls until cleared")
}

func TestMetricsRegistry(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)

	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   space.NewGoalStates(s, s.NewState(1.5, 1)),
	}, pathplan.WithRange(2.0), pathplan.WithSeed(1), pathplan.WithMetrics(true))
	require.NoError(t, err)

	reg := p.MetricsRegistry()
	require.NotNil(t, reg)

	_, err = p.Solve(pathplan.Never())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "pathplan_iterations_total")
	assert.Contains(t, names, "pathplan_solves_total")
}

func TestMetricsDisabledByDefault(t *testing.T) {
	s := newSpace(t)
	si := newInfo(t, s, allValid)
	p, err := pathplan.New(si, &pathplan.Problem{
		Starts: []space.State{s.NewState(1, 1)},
		Goal:   space.NewGoalStates(s, s.NewState(2, 2)),
	})
	require.NoError(t, err)
	assert.Nil(t, p.MetricsRegistry())
}

func TestParams(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		p, err := pathplan.LoadParams(strings.NewReader("range: 1.5\nseed: 7\nsample_attempts: 20\n"))
		require.NoError(t, err)
		assert.Equal(t, 1.5, p.Range)
		assert.Equal(t, int64(7), p.Seed)
		assert.Equal(t, 20, p.SampleAttempts)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := pathplan.LoadParams(strings.NewReader("range: 1.5\nbogus: 1\n"))
		require.Error(t, err)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "params.yaml")
		require.NoError(t, os.WriteFile(path, []byte("range: 2.5\nseed: 9\n"), 0o644))

		s := newSpace(t)
		si := newInfo(t, s, allValid)
		p, err := pathplan.New(si, &pathplan.Problem{
			Starts: []space.State{s.NewState(1, 1)},
			Goal:   space.NewGoalStates(s, s.NewState(9, 9)),
		}, pathplan.WithParamsFile(path))
		require.NoError(t, err)
		assert.Equal(t, 2.5, p.Range())
	})

	t.Run("missing file", func(t *testing.T) {
		s := newSpace(t)
		si := newInfo(t, s, allValid)
		_, err := pathplan.New(si, &pathplan.Problem{
			Starts: []space.State{s.NewState(1, 1)},
			Goal:   space.NewGoalStates(s, s.NewState(9, 9)),
		}, pathplan.WithParamsFile(filepath.Join(t.TempDir(), "absent.yaml")))
		require.Error(t, err)
	})
}
