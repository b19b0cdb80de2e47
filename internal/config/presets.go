package config

func f(v float64) *float64 { return &v }

var Presets = map[string]map[string]*Config{
	"logistic": {
		"independent": {
			System: "logistic",
			Logistic: LogisticConfig{
				NPoints: 500, NTransient: 10000, StepSize: 1, MaxAttempts: 10,
				AlphaXY: f(0.0), AlphaYX: f(0.0),
			},
		},
		"weak_coupling": {
			System: "logistic",
			Logistic: LogisticConfig{
				NPoints: 500, NTransient: 10000, StepSize: 1, MaxAttempts: 10,
				AlphaXY: f(0.05), AlphaYX: f(0.05),
			},
		},
		"strong_coupling": {
			System: "logistic",
			Logistic: LogisticConfig{
				NPoints: 500, NTransient: 10000, StepSize: 1, MaxAttempts: 20,
				AlphaXY: f(0.3), AlphaYX: f(0.3),
			},
		},
		"unidirectional": {
			System: "logistic",
			Logistic: LogisticConfig{
				NPoints: 500, NTransient: 10000, StepSize: 1, MaxAttempts: 10,
				AlphaXY: f(0.2), AlphaYX: f(0.0),
			},
		},
		"noisy": {
			System: "logistic",
			Logistic: LogisticConfig{
				NPoints: 500, NTransient: 10000, StepSize: 1, NoiseFrac: 0.1, MaxAttempts: 10,
			},
		},
	},
	"rossler": {
		"default": {
			System: "rossler",
			ODE:    ODEConfig{Integrator: "rk4", Duration: 200.0, SampleDt: 0.1, SubSteps: 10},
		},
		"fine": {
			System: "rossler",
			ODE:    ODEConfig{Integrator: "rk4", Duration: 100.0, SampleDt: 0.01, SubSteps: 10},
		},
	},
	"lorenz": {
		"default": {
			System: "lorenz",
			ODE:    ODEConfig{Integrator: "rk4", Duration: 50.0, SampleDt: 0.01, SubSteps: 10},
		},
	},
	"coupled_rossler": {
		"sync": {
			System: "coupled_rossler",
			ODE: ODEConfig{
				Integrator: "rk4", Duration: 200.0, SampleDt: 0.1, SubSteps: 10,
				Params: map[string]float64{"eps1": 0.15, "eps2": 0.15},
			},
		},
		"weak": {
			System: "coupled_rossler",
			ODE: ODEConfig{
				Integrator: "rk4", Duration: 200.0, SampleDt: 0.1, SubSteps: 10,
				Params: map[string]float64{"eps1": 0.02, "eps2": 0.02},
			},
		},
	},
}

func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}
