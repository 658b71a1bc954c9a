// Package pathplan provides sampling-based motion planning for continuous
// configuration spaces. The planner is a bidirectional Expansive Space Trees
// (EST) variant: it grows one tree from the start states and one from
// sampled goal states, biases expansion toward sparse regions through
// density-weighted node selection and rejection sampling, and finishes by
// bridging the two trees with a single valid motion.
package pathplan

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xDarkicex/pathplan/internal/obs"
	"github.com/xDarkicex/pathplan/internal/tree"
	"github.com/xDarkicex/pathplan/space"
)

const plannerName = "biest"

// selfConfigRangeFraction is the fraction of the space extent used as the
// expansion range when none is configured.
const selfConfigRangeFraction = 0.2

// Problem is what the planner searches: one or more initial states and a
// sampleable goal region.
type Problem struct {
	Starts []space.State
	Goal   space.Goal
}

// connection records the arena ids of the two motions whose bridging motion
// joined the trees.
type connection struct {
	startID, goalID int
}

// Planner is a bidirectional EST planner. A planner is bound to one problem;
// repeated Solve calls keep growing the same trees until Clear. Not safe for
// concurrent use.
type Planner struct {
	cfg     Config
	si      *space.Information
	problem *Problem

	rng     *rand.Rand
	logger  *slog.Logger
	metrics *obs.Metrics

	tStart, tGoal *tree.Tree
	sampler       *space.ValidSampler
	conn          *connection
	nextStart     int // index of the first unconsumed initial state

	// derived each solve from cfg.Range
	maxDistance float64
	nbrRadius   float64

	// ring of tree-side expansion decisions, newest last; diagnostics only
	sideTrace []byte
}

// New creates a planner for the given space information and problem.
func New(si *space.Information, problem *Problem, opts ...Option) (*Planner, error) {
	if si == nil {
		return nil, fmt.Errorf("space information must not be nil")
	}
	if problem == nil {
		return nil, fmt.Errorf("problem must not be nil")
	}

	cfg := Config{}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var metrics *obs.Metrics
	if cfg.MetricsEnabled {
		metrics = obs.NewMetrics()
	}

	dist := si.Distance
	return &Planner{
		cfg:     cfg,
		si:      si,
		problem: problem,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger.With("planner", plannerName),
		metrics: metrics,
		tStart:  tree.New(dist),
		tGoal:   tree.New(dist),
	}, nil
}

// Range returns the configured maximum expansion distance; zero means it
// will be self-configured from the space extent on the next solve.
func (p *Planner) Range() float64 { return p.cfg.Range }

// MetricsRegistry returns the registry holding the planner's metrics, nil
// unless metrics are enabled.
func (p *Planner) MetricsRegistry() *prometheus.Registry {
	if p.metrics == nil {
		return nil
	}
	return p.metrics.Registry()
}

// Clear discards both trees, the connection record and the valid-state
// sampler, returning the planner to its post-construction state. Idempotent
// and safe to call before any solve.
func (p *Planner) Clear() {
	p.tStart.Clear()
	p.tGoal.Clear()
	p.sampler = nil
	p.conn = nil
	p.nextStart = 0
	p.sideTrace = nil
}
