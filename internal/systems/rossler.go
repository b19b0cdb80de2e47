package systems

import "github.com/san-kum/chaosgen/internal/ode"

type Rossler struct{ a, b, c float64 }

func NewRossler() *Rossler { return &Rossler{0.2, 0.2, 5.7} }
func (r *Rossler) Dim() int { return 3 }

// Derive calculates the Rossler attractor derivatives.
func (r *Rossler) Derive(s ode.State, _ float64) ode.State {
	return ode.State{-s[1] - s[2], s[0] + r.a*s[1], r.b + s[2]*(s[0]-r.c)}
}

func (r *Rossler) DefaultState() ode.State { return ode.State{1.0, 1.0, 1.0} }

// OrderedParams returns (a, b, c), the declared parameter order of the
// system.
func (r *Rossler) OrderedParams() []float64 { return []float64{r.a, r.b, r.c} }

func (r *Rossler) SetParam(n string, v float64) {
	switch n {
	case "a":
		r.a = v
	case "b":
		r.b = v
	case "c":
		r.c = v
	}
}
