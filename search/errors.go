package search

import "errors"

// ErrInfeasible is returned when the root call exhausts every branch
// without finding a placement of tents satisfying every tree and budget.
var ErrInfeasible = errors.New("search: board has no legal completion")

// ErrInterrupted is returned when Cancel fires between tree decisions.
// The caller's Grid is untouched — Solve only ever mutates its own clone.
var ErrInterrupted = errors.New("search: search interrupted")
