package logistic

import (
	"math/rand"

	"github.com/san-kum/chaosgen/internal/dist"
)

// ParameterSet is the concrete parameterization of one generation run.
// Once constructed it is never mutated; a retry builds a fresh one.
type ParameterSet struct {
	MuX float64 `json:"mu_x"`
	MuY float64 `json:"mu_y"`
	// AlphaXY is the forcing of X on Y's recurrence, AlphaYX the reverse.
	AlphaXY float64 `json:"alpha_xy"`
	AlphaYX float64 `json:"alpha_yx"`
	X0      float64 `json:"x0"`
	Y0      float64 `json:"y0"`
}

// ParameterSpec describes how to build a ParameterSet. Every field is a
// distribution; a fixed value is expressed as dist.Constant. Resolution
// draws each field exactly once.
type ParameterSpec struct {
	MuX     dist.Sampleable
	MuY     dist.Sampleable
	AlphaXY dist.Sampleable
	AlphaYX dist.Sampleable
	X0      dist.Sampleable
	Y0      dist.Sampleable
}

// DefaultSpec places both maps in the chaotic band with weak to moderate
// bidirectional coupling and random initial conditions in (0, 1).
func DefaultSpec() ParameterSpec {
	return ParameterSpec{
		MuX:     dist.Uniform{Low: 3.6, High: 4.0},
		MuY:     dist.Uniform{Low: 3.6, High: 4.0},
		AlphaXY: dist.Uniform{Low: 0.0, High: 0.4},
		AlphaYX: dist.Uniform{Low: 0.0, High: 0.4},
		X0:      dist.Uniform{Low: 0.1, High: 0.9},
		Y0:      dist.Uniform{Low: 0.1, High: 0.9},
	}
}

// Resolve draws every field once, producing a concrete ParameterSet.
func (s ParameterSpec) Resolve(r *rand.Rand) ParameterSet {
	return ParameterSet{
		MuX:     s.MuX.Sample(r),
		MuY:     s.MuY.Sample(r),
		AlphaXY: s.AlphaXY.Sample(r),
		AlphaYX: s.AlphaYX.Sample(r),
		X0:      s.X0.Sample(r),
		Y0:      s.Y0.Sample(r),
	}
}

// RedrawKeepCoupling draws fresh growth rates and initial conditions while
// carrying the coupling strengths of prev forward verbatim. This is the
// retry rule after a collapsed run.
func (s ParameterSpec) RedrawKeepCoupling(prev ParameterSet, r *rand.Rand) ParameterSet {
	return ParameterSet{
		MuX:     s.MuX.Sample(r),
		MuY:     s.MuY.Sample(r),
		AlphaXY: prev.AlphaXY,
		AlphaYX: prev.AlphaYX,
		X0:      s.X0.Sample(r),
		Y0:      s.Y0.Sample(r),
	}
}

// FixedSpec wraps a concrete ParameterSet so it resolves to itself.
func FixedSpec(p ParameterSet) ParameterSpec {
	return ParameterSpec{
		MuX:     dist.Constant(p.MuX),
		MuY:     dist.Constant(p.MuY),
		AlphaXY: dist.Constant(p.AlphaXY),
		AlphaYX: dist.Constant(p.AlphaYX),
		X0:      dist.Constant(p.X0),
		Y0:      dist.Constant(p.Y0),
	}
}
