package ode

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/chaosgen/internal/chaos"
)

const DefaultSubSteps = 10

// Solution holds a sampled trajectory: States[i] is the state at Times[i],
// and samples are evenly spaced by the requested interval.
type Solution struct {
	Times  []float64
	States []State
}

// Component extracts one state dimension as a series.
func (s *Solution) Component(idx int) chaos.Series {
	out := make(chaos.Series, len(s.States))
	for i, st := range s.States {
		out[i] = st[idx]
	}
	return out
}

// Solver integrates a System and samples it at a fixed interval. Each
// sample interval is internally subdivided into subSteps integrator steps.
type Solver struct {
	integ    Integrator
	subSteps int
}

func NewSolver(integ Integrator, subSteps int) *Solver {
	if subSteps < 1 {
		subSteps = DefaultSubSteps
	}
	return &Solver{integ: integ, subSteps: subSteps}
}

// Solve integrates sys from x0 over [t0, tEnd], returning samples spaced
// by sampleDt with the initial condition as sample 0. A non-finite state
// aborts the solve with chaos.ErrDiverged.
func (s *Solver) Solve(ctx context.Context, sys System, x0 State, t0, tEnd, sampleDt float64) (*Solution, error) {
	if sampleDt <= 0 {
		return nil, fmt.Errorf("sample interval must be positive, got %f", sampleDt)
	}
	if tEnd <= t0 {
		return nil, fmt.Errorf("time span must be increasing, got [%f, %f]", t0, tEnd)
	}
	if len(x0) != sys.Dim() {
		return nil, fmt.Errorf("initial state has %d components, system needs %d", len(x0), sys.Dim())
	}

	// Epsilon guards against 1.0/0.1 style float truncation.
	nSamples := int(math.Floor((tEnd-t0)/sampleDt+1e-9)) + 1
	sol := &Solution{
		Times:  make([]float64, 0, nSamples),
		States: make([]State, 0, nSamples),
	}

	x := x0.Clone()
	sol.Times = append(sol.Times, t0)
	sol.States = append(sol.States, x.Clone())

	dt := sampleDt / float64(s.subSteps)

	for i := 1; i < nSamples; i++ {
		select {
		case <-ctx.Done():
			return sol, ctx.Err()
		default:
		}

		t := t0 + float64(i-1)*sampleDt
		for k := 0; k < s.subSteps; k++ {
			x = s.integ.Step(sys, x, t+float64(k)*dt, dt)
		}

		if !x.IsFinite() {
			return sol, fmt.Errorf("%w at t=%.4f", chaos.ErrDiverged, t+sampleDt)
		}

		sol.Times = append(sol.Times, t0+float64(i)*sampleDt)
		sol.States = append(sol.States, x.Clone())
	}

	return sol, nil
}
