package logistic

import (
	"math/rand"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// extract discards the transient prefix and takes every StepSize-th raw
// element starting at index NTransient, for exactly NPoints samples. The
// last retained raw index is NTransient + (NPoints-1)*StepSize.
func extract(raw chaos.Series, cfg RunConfig) chaos.Series {
	out := make(chaos.Series, cfg.NPoints)
	for i := 0; i < cfg.NPoints; i++ {
		out[i] = raw[cfg.NTransient+i*cfg.StepSize]
	}
	return out
}

// injectNoise perturbs each sample in place with an independent uniform
// draw from [-h, +h] where h = frac * population stddev of the series.
// The stddev is taken over the extracted samples, not the raw sequence.
func injectNoise(s chaos.Series, frac float64, r *rand.Rand) {
	if frac <= 0 {
		return
	}
	half := s.StdDev() * frac
	for i := range s {
		s[i] += (2*r.Float64() - 1) * half
	}
}
