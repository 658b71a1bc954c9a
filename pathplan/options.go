package pathplan

import (
	"fmt"
	"log/slog"
)

// Config holds planner configuration.
type Config struct {
	// Range is the maximum expansion distance: the cap on how far a new
	// candidate may be sampled from its seed, and the bridging-search radius
	// between the two trees. Zero means self-configure from the space
	// extent. The neighborhood radius used for density queries is always
	// Range/3.
	Range float64

	// Seed seeds the planner's random source. Zero means seed from the
	// clock; set it for reproducible runs.
	Seed int64

	// SampleAttempts bounds the rejection sampling done by the valid-state
	// sampler. Zero selects the sampler default.
	SampleAttempts int

	// MetricsEnabled turns on prometheus instrumentation.
	MetricsEnabled bool

	// Logger receives planner log lines. Nil discards them.
	Logger *slog.Logger
}

func (c *Config) validate() error {
	if c.Range < 0 {
		return fmt.Errorf("range must be non-negative, got %v", c.Range)
	}
	if c.SampleAttempts < 0 {
		return fmt.Errorf("sample attempts must be non-negative, got %d", c.SampleAttempts)
	}
	return nil
}

// Option represents a planner configuration option.
type Option func(*Config) error

// WithRange sets the maximum expansion distance.
func WithRange(r float64) Option {
	return func(c *Config) error {
		if r <= 0 {
			return fmt.Errorf("range must be positive, got %v", r)
		}
		c.Range = r
		return nil
	}
}

// WithSeed sets the random seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *Config) error {
		c.Seed = seed
		return nil
	}
}

// WithSampleAttempts sets the valid-state sampler attempt budget.
func WithSampleAttempts(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("sample attempts must be positive, got %d", n)
		}
		c.SampleAttempts = n
		return nil
	}
}

// WithMetrics enables or disables metrics collection.
func WithMetrics(enabled bool) Option {
	return func(c *Config) error {
		c.MetricsEnabled = enabled
		return nil
	}
}

// WithLogger sets the planner logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}
