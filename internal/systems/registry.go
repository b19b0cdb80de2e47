package systems

import (
	"fmt"
	"sort"

	"github.com/san-kum/chaosgen/internal/ode"
)

// Model is a continuous system with a default initial condition and a
// declared parameter ordering.
type Model interface {
	ode.System
	DefaultState() ode.State
	OrderedParams() []float64
	SetParam(name string, value float64)
}

var factories = map[string]func() Model{
	"rossler":         func() Model { return NewRossler() },
	"lorenz":          func() Model { return NewLorenz() },
	"coupled_rossler": func() Model { return NewCoupledRossler() },
}

// New builds a continuous system by name.
func New(name string) (Model, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s (available: %v)", name, List())
	}
	return fn(), nil
}

func List() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
