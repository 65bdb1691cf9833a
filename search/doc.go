// Package search implements the B6 backtracking solver: tree-indexed
// minimum-remaining-values (MRV) backtracking with forward checking via
// 8-neighbour GRASS propagation, an edit-record undo stack, and N/S/W/E
// value ordering.
//
// Grounded on the teacher's tsp branch-and-bound engine shape: a private
// engine struct carries the working grid and the options (including
// cancellation) instead of closures, mirroring tsp's bbEngine; the
// cancellation check happens once per tree decision, the same "sparse,
// counter-free" idea as tsp's deadlineCheck but scaled to this search's
// much smaller branching factor (trees, not TSP nodes).
package search
