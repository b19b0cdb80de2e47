package systems

import "github.com/san-kum/chaosgen/internal/ode"

// CoupledRossler is a pair of Rossler oscillators with diffusive x-coupling.
// eps1 is the forcing of the second oscillator on the first, eps2 the
// reverse. State layout: (x1, y1, z1, x2, y2, z2).
type CoupledRossler struct {
	omega1, omega2 float64
	eps1, eps2     float64
	a, b, c        float64
}

func NewCoupledRossler() *CoupledRossler {
	return &CoupledRossler{
		omega1: 1.015,
		omega2: 0.985,
		eps1:   0.05,
		eps2:   0.05,
		a:      0.15,
		b:      0.2,
		c:      10.0,
	}
}

func (r *CoupledRossler) Dim() int { return 6 }

func (r *CoupledRossler) Derive(s ode.State, _ float64) ode.State {
	x1, y1, z1 := s[0], s[1], s[2]
	x2, y2, z2 := s[3], s[4], s[5]
	return ode.State{
		-r.omega1*y1 - z1 + r.eps1*(x2-x1),
		r.omega1*x1 + r.a*y1,
		r.b + z1*(x1-r.c),
		-r.omega2*y2 - z2 + r.eps2*(x1-x2),
		r.omega2*x2 + r.a*y2,
		r.b + z2*(x2-r.c),
	}
}

func (r *CoupledRossler) DefaultState() ode.State {
	return ode.State{1.0, 1.0, 1.0, -1.0, 1.0, 1.0}
}

// OrderedParams returns (omega1, omega2, eps1, eps2, a, b, c), the declared
// parameter order of the system.
func (r *CoupledRossler) OrderedParams() []float64 {
	return []float64{r.omega1, r.omega2, r.eps1, r.eps2, r.a, r.b, r.c}
}

func (r *CoupledRossler) SetParam(n string, v float64) {
	switch n {
	case "omega1":
		r.omega1 = v
	case "omega2":
		r.omega2 = v
	case "eps1":
		r.eps1 = v
	case "eps2":
		r.eps2 = v
	case "a":
		r.a = v
	case "b":
		r.b = v
	case "c":
		r.c = v
	}
}
