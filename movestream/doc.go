// Package movestream implements the B7 move stream: given a cached,
// solved Grid and the external collaborator's live (partially filled)
// Grid, NextMove returns the single next cell to reveal.
//
// Grounded on the Python original's back_bot.py get_best_move priority scan:
// tents first (row-major), then any still-UNKNOWN cell as GRASS — the
// second scan never consults the solved grid's value, since by the time
// every TENT has been revealed, every remaining UNKNOWN cell can only be
// GRASS.
package movestream
