// Package heuristics implements the B3 local rules used by the
// propagation driver (propagate): adjacency exclusion, row/column
// saturation, row/column forcing, isolated tree, no-man's-land, and
// locked candidates.
//
// Rules never mutate a Grid themselves — a Rule reports one deduced Move
// and leaves committing it (via Grid.Set) to the caller, so a fixed-point
// loop and a single-step caller can share the same rules.
package heuristics
