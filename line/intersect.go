package line

import "github.com/ashrey-kulkarni/tentsolve/tentboard"

// ForcedFromCompletions returns the subset of indices whose value is
// identical across every completion in completions. TREE indices are
// never emitted — they're fixed by construction, not "forced."
//
// An empty completions slice (the infeasible case) yields an empty,
// non-nil map.
func ForcedFromCompletions(completions []Completion) map[int]tentboard.CellState {
	forced := make(map[int]tentboard.CellState)
	if len(completions) == 0 {
		return forced
	}

	length := len(completions[0])
	for i := 0; i < length; i++ {
		first := completions[0][i]
		if first == tentboard.Tree {
			continue
		}
		unanimous := true
		for _, c := range completions[1:] {
			if c[i] != first {
				unanimous = false
				break
			}
		}
		if unanimous {
			forced[i] = first
		}
	}
	return forced
}
