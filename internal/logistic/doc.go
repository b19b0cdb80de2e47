// Package logistic generates benchmark time series from a pair of
// bidirectionally coupled logistic maps.
//
// The recurrence advances two mutually forcing populations:
//
//	x' = x * (μX − μX·x − αYX·y)
//	y' = y * (μY − μY·y − αXY·x)
//
// A run iterates through a transient burn-in, subsamples the remainder at
// a configurable stride and optionally perturbs the output with bounded
// uniform noise. Runs that diverge to non-finite values are discarded and
// retried with fresh parameters, preserving the coupling strengths.
package logistic
