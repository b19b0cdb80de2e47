package logistic

import "github.com/san-kum/chaosgen/internal/chaos"

// Step advances the bidirectionally coupled logistic map one iteration:
//
//	x' = x * (μX − μX·x − αYX·y)
//	y' = y * (μY − μY·y − αXY·x)
//
// Values are not clamped; leaving [0, 1] is how a collapse later shows up
// as NaN or Inf in the raw sequence.
func Step(x, y float64, p ParameterSet) (float64, float64) {
	xn := x * (p.MuX - p.MuX*x - p.AlphaYX*y)
	yn := y * (p.MuY - p.MuY*y - p.AlphaXY*x)
	return xn, yn
}

// Iterate fills two raw sequences of length n, index 0 holding the initial
// condition and each later index one application of Step.
func Iterate(p ParameterSet, n int) (chaos.Series, chaos.Series) {
	rawX := make(chaos.Series, n)
	rawY := make(chaos.Series, n)
	if n == 0 {
		return rawX, rawY
	}

	rawX[0], rawY[0] = p.X0, p.Y0
	for i := 1; i < n; i++ {
		rawX[i], rawY[i] = Step(rawX[i-1], rawY[i-1], p)
	}
	return rawX, rawY
}
