package tents

import "errors"

// ErrInfeasible is returned when the puzzle has no legal solution.
var ErrInfeasible = errors.New("tents: puzzle has no legal solution")

// ErrInterrupted is returned when a Solve call's cancellation context
// fires before a solution is found.
var ErrInterrupted = errors.New("tents: solve interrupted")
