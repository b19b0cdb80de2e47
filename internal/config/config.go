package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chaosgen/internal/dist"
	"github.com/san-kum/chaosgen/internal/logistic"
)

const (
	DefaultDuration = 100.0
	DefaultSampleDt = 0.1
	DefaultSubSteps = 10
)

type Config struct {
	System   string         `yaml:"system"`
	Logistic LogisticConfig `yaml:"logistic"`
	ODE      ODEConfig      `yaml:"ode"`
}

// LogisticConfig mirrors logistic.RunConfig plus optional fixed map
// parameters. A nil parameter field means "draw from the default
// distribution".
type LogisticConfig struct {
	NPoints     int     `yaml:"n_points"`
	NTransient  int     `yaml:"n_transient"`
	StepSize    int     `yaml:"step_size"`
	NoiseFrac   float64 `yaml:"noise_frac"`
	Seed        int64   `yaml:"seed"`
	MaxAttempts int     `yaml:"max_attempts"`

	MuX     *float64 `yaml:"mu_x,omitempty"`
	MuY     *float64 `yaml:"mu_y,omitempty"`
	AlphaXY *float64 `yaml:"alpha_xy,omitempty"`
	AlphaYX *float64 `yaml:"alpha_yx,omitempty"`
	X0      *float64 `yaml:"x0,omitempty"`
	Y0      *float64 `yaml:"y0,omitempty"`
}

type ODEConfig struct {
	Integrator string             `yaml:"integrator"`
	Duration   float64            `yaml:"duration"`
	SampleDt   float64            `yaml:"sample_dt"`
	SubSteps   int                `yaml:"sub_steps"`
	InitState  []float64          `yaml:"init_state,omitempty"`
	Params     map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	run := logistic.DefaultRunConfig()
	return &Config{
		System: "logistic",
		Logistic: LogisticConfig{
			NPoints:     run.NPoints,
			NTransient:  run.NTransient,
			StepSize:    run.StepSize,
			NoiseFrac:   run.NoiseFrac,
			MaxAttempts: run.MaxAttempts,
		},
		ODE: ODEConfig{
			Integrator: "rk4",
			Duration:   DefaultDuration,
			SampleDt:   DefaultSampleDt,
			SubSteps:   DefaultSubSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RunConfig converts the logistic section to the generator's RunConfig.
func (c *Config) RunConfig() logistic.RunConfig {
	return logistic.RunConfig{
		NPoints:     c.Logistic.NPoints,
		NTransient:  c.Logistic.NTransient,
		StepSize:    c.Logistic.StepSize,
		NoiseFrac:   c.Logistic.NoiseFrac,
		Seed:        c.Logistic.Seed,
		MaxAttempts: c.Logistic.MaxAttempts,
	}
}

// ParameterSpec builds the generator's spec: fixed values where the config
// pins a parameter, default distributions everywhere else.
func (c *Config) ParameterSpec() logistic.ParameterSpec {
	spec := logistic.DefaultSpec()
	if c.Logistic.MuX != nil {
		spec.MuX = dist.Constant(*c.Logistic.MuX)
	}
	if c.Logistic.MuY != nil {
		spec.MuY = dist.Constant(*c.Logistic.MuY)
	}
	if c.Logistic.AlphaXY != nil {
		spec.AlphaXY = dist.Constant(*c.Logistic.AlphaXY)
	}
	if c.Logistic.AlphaYX != nil {
		spec.AlphaYX = dist.Constant(*c.Logistic.AlphaYX)
	}
	if c.Logistic.X0 != nil {
		spec.X0 = dist.Constant(*c.Logistic.X0)
	}
	if c.Logistic.Y0 != nil {
		spec.Y0 = dist.Constant(*c.Logistic.Y0)
	}
	return spec
}
