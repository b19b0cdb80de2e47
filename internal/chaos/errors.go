package chaos

import "errors"

// Domain errors for trajectory generation.
var (
	// ErrCollapsed indicates a raw trajectory diverged to NaN or Inf.
	ErrCollapsed = errors.New("chaos: trajectory collapsed (NaN or Inf detected)")

	// ErrRetriesExhausted indicates every generation attempt collapsed.
	ErrRetriesExhausted = errors.New("chaos: retries exhausted, all attempts collapsed")

	// ErrDiverged indicates an ODE solve produced a non-finite state.
	ErrDiverged = errors.New("chaos: solver state diverged")
)
