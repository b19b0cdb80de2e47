package ode

type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Step(sys System, s State, t, dt float64) State {
	ds := sys.Derive(s, t)
	next := make(State, len(s))
	for i := range s {
		next[i] = s[i] + dt*ds[i]
	}
	return next
}
