// Package obs holds observability instruments for the planners.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all planner metrics, registered on a private registry so
// one planner's counters never collide with another's.
type Metrics struct {
	Iterations        prometheus.Counter
	DensityRejections prometheus.Counter
	MotionChecks      prometheus.Counter
	StatesCreated     *prometheus.CounterVec // by tree side
	SolveDuration     prometheus.Histogram
	Solves            *prometheus.CounterVec // by status

	registry *prometheus.Registry
}

// NewMetrics creates a metrics instance with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Iterations: factory.NewCounter(prometheus.CounterOpts{
			Name: "pathplan_iterations_total",
			Help: "Total main-loop iterations across solve calls",
		}),
		DensityRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "pathplan_density_rejections_total",
			Help: "Candidate states rejected by the density test",
		}),
		MotionChecks: factory.NewCounter(prometheus.CounterOpts{
			Name: "pathplan_motion_checks_total",
			Help: "Motion validity oracle invocations",
		}),
		StatesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathplan_states_created_total",
			Help: "States added to the search trees",
		}, []string{"side"}),
		SolveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathplan_solve_duration_seconds",
			Help:    "Wall time of solve calls",
			Buckets: prometheus.DefBuckets,
		}),
		Solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathplan_solves_total",
			Help: "Solve calls by terminal status",
		}, []string{"status"}),
		registry: registry,
	}
}

// Registry returns the private registry so callers can mount or gather it.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
