// Package tentcache is a persistent, on-disk cache of solved Grids,
// keyed by a hash of their Puzzle. It's an external collaborator per
// SPEC_FULL.md §2 — it depends only on tentboard's public types, never
// the other way around, so re-solving a puzzle the CLI has already seen
// is an O(1) disk lookup instead of a fresh B5/B6 run.
//
// Grounded on the teacher's hailam-chessplay internal/storage package:
// a thin struct wrapping a *badger.DB, JSON-marshaled values, one
// exported method per logical operation.
package tentcache
