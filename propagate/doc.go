// Package propagate implements the B5 fixed-point driver: repeatedly run
// the B3 local heuristics until none fires, then run the B4 region
// decomposer once, and repeat until a full pass commits nothing or the
// board is proven infeasible.
//
// Every commit goes through tentboard.Grid.Set, which is the single
// invariant-checking, idempotent mutation primitive every package in
// this module shares.
package propagate
