// Package region implements the B4 region decomposer: it partitions the
// UNKNOWN cells of a Grid into 8-neighbour-connected components, then
// restricts line enumeration (package line) to just the rows and columns
// each component touches, applying any forced cells it finds.
//
// Grounded on the teacher's gridgraph.ConnectedComponents: same row-major
// scan plus BFS-queue component collection, generalized from "same land
// value" adjacency to "both cells UNKNOWN," and from a configurable
// Conn4/Conn8 policy to a fixed 8-neighbour rule.
package region
