package ode

import "math"

// State is the instantaneous state vector of a continuous system.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsFinite() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is an autonomous-or-not ODE: dX/dt = Derive(X, t).
type System interface {
	Derive(s State, t float64) State
	Dim() int
}

// Integrator advances a state by one fixed step.
type Integrator interface {
	Step(sys System, s State, t, dt float64) State
}
