// Package chaos provides shared primitives for chaotic time-series
// generation.
//
// The package defines the fundamental types used across generators:
//
//   - [Series]: ordered sequence of real-valued observations
//   - sentinel errors for collapse, retry exhaustion and solver divergence
//
// Generators live in sibling packages: internal/logistic for the coupled
// logistic map and internal/systems for the continuous attractors.
package chaos
