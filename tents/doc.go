// Package tents is the top-level facade: it wires propagate (B5), search
// (B6), and movestream (B7) together behind the four operations spec.md
// §6 names — Solve, NextMove, EnumerateLine, ForcedFromCompletions —
// and re-exports the line package's pure functions for testability.
//
// Mirrors the teacher's core/api.go: a thin facade over already-complete
// packages, adding no algorithm of its own beyond wiring order.
package tents
