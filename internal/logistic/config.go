package logistic

import (
	"fmt"
	"time"
)

const (
	DefaultNPoints     = 100
	DefaultNTransient  = 10000
	DefaultStepSize    = 1
	DefaultMaxAttempts = 10
)

// RunConfig holds the generation controls for one trajectory.
type RunConfig struct {
	// NPoints is the number of output samples per series.
	NPoints int `json:"n_points" yaml:"n_points"`
	// NTransient is the burn-in length discarded before sampling.
	NTransient int `json:"n_transient" yaml:"n_transient"`
	// StepSize is the stride, in raw iterations, between retained samples.
	StepSize int `json:"step_size" yaml:"step_size"`
	// NoiseFrac scales the uniform noise half-range as a fraction of each
	// extracted series' standard deviation. Zero disables noise.
	NoiseFrac float64 `json:"noise_frac" yaml:"noise_frac"`
	// Seed drives every random draw of the run and is captured in the
	// result for reproducibility.
	Seed int64 `json:"seed" yaml:"seed"`
	// MaxAttempts bounds the collapse-retry loop.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		NPoints:     DefaultNPoints,
		NTransient:  DefaultNTransient,
		StepSize:    DefaultStepSize,
		NoiseFrac:   0.0,
		Seed:        time.Now().UnixNano(),
		MaxAttempts: DefaultMaxAttempts,
	}
}

func (c RunConfig) Validate() error {
	if c.NPoints <= 0 {
		return fmt.Errorf("n_points must be positive, got %d", c.NPoints)
	}
	if c.NTransient < 0 {
		return fmt.Errorf("n_transient must be non-negative, got %d", c.NTransient)
	}
	if c.StepSize < 1 {
		return fmt.Errorf("step_size must be at least 1, got %d", c.StepSize)
	}
	if c.NoiseFrac < 0 {
		return fmt.Errorf("noise_frac must be non-negative, got %f", c.NoiseFrac)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

// RawLen is the total raw sequence length a run iterates through:
// the transient prefix plus NPoints strided samples.
func (c RunConfig) RawLen() int {
	return c.NTransient + c.NPoints*c.StepSize
}
