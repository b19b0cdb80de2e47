package dist

import "math/rand"

// Sampleable is any real-valued distribution capable of producing a draw.
// Draws take an explicit RNG so callers control seeding and reproducibility.
type Sampleable interface {
	Sample(r *rand.Rand) float64
}

// Constant always returns the same value. It lets a fixed parameter and a
// distribution-backed default share one code path.
type Constant float64

func (c Constant) Sample(_ *rand.Rand) float64 { return float64(c) }

// Uniform draws from [Low, High).
type Uniform struct {
	Low  float64
	High float64
}

func (u Uniform) Sample(r *rand.Rand) float64 {
	return u.Low + r.Float64()*(u.High-u.Low)
}

// Normal draws from a Gaussian with the given mean and standard deviation.
type Normal struct {
	Mean   float64
	StdDev float64
}

func (n Normal) Sample(r *rand.Rand) float64 {
	return n.Mean + r.NormFloat64()*n.StdDev
}
