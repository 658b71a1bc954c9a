package pathplan

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Params mirrors a YAML planner parameter file:
//
//	range: 0.5
//	seed: 42
//	sample_attempts: 100
type Params struct {
	Range          float64 `yaml:"range"`
	Seed           int64   `yaml:"seed"`
	SampleAttempts int     `yaml:"sample_attempts"`
}

// LoadParams decodes planner parameters from YAML.
func LoadParams(r io.Reader) (*Params, error) {
	var p Params
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode params: %w", err)
	}
	return &p, nil
}

// WithParams applies a parameter set. Zero-valued fields keep their
// configured defaults.
func WithParams(p *Params) Option {
	return func(c *Config) error {
		if p == nil {
			return fmt.Errorf("params must not be nil")
		}
		if p.Range < 0 || p.SampleAttempts < 0 {
			return fmt.Errorf("params must be non-negative")
		}
		if p.Range > 0 {
			c.Range = p.Range
		}
		if p.Seed != 0 {
			c.Seed = p.Seed
		}
		if p.SampleAttempts > 0 {
			c.SampleAttempts = p.SampleAttempts
		}
		return nil
	}
}

// WithParamsFile reads a YAML parameter file and applies it.
func WithParamsFile(path string) Option {
	return func(c *Config) error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open params file: %w", err)
		}
		defer f.Close()
		p, err := LoadParams(f)
		if err != nil {
			return err
		}
		return WithParams(p)(c)
	}
}
