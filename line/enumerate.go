package line

import "github.com/ashrey-kulkarni/tentsolve/tentboard"

// Completion is one fully-valued row or column: every index holds TREE
// (copied through from the input), TENT, or GRASS.
type Completion []tentboard.CellState

// completionState is the memoization key: the remainder of a line depends
// only on how far we've gotten, how many tents are already placed, and
// whether the previous cell was a tent. Scoped to a single EnumerateLine
// call — see doc.go.
type completionState struct {
	index       int
	placed      int
	lastWasTent bool
}

// enumerator carries the constant context of one EnumerateLine call:
// the input line, its fixed-index set, the target, and a precomputed
// suffix count of TREE positions for O(1) upper-bound pruning.
type enumerator struct {
	line       []tentboard.CellState
	fixed      map[int]bool
	target     int
	treeSuffix []int // treeSuffix[i] = count of TREE in line[i:]
	memo       map[completionState][]Completion
}

// EnumerateLine returns every legal completion of a single row or column.
//
// length is the line's size; target is the exact number of TENTs the
// completion must contain; line holds the current value at each index
// (TREE cells are copied through automatically; a fixed index must
// already hold its locked value — TENT or GRASS — in line); fixed names
// the indices whose value may not change.
//
// An empty (nil) result means the slice is infeasible from its current
// fixed cells — see spec §4.1's failure-mode note: propagators treat this
// as a hard stop for the current search/propagation node, not a panic.
func EnumerateLine(length, target int, line []tentboard.CellState, fixed map[int]bool) []Completion {
	if length != len(line) {
		return nil
	}

	treeSuffix := make([]int, length+1)
	for i := length - 1; i >= 0; i-- {
		treeSuffix[i] = treeSuffix[i+1]
		if line[i] == tentboard.Tree {
			treeSuffix[i]++
		}
	}

	e := &enumerator{
		line:       line,
		fixed:      fixed,
		target:     target,
		treeSuffix: treeSuffix,
		memo:       make(map[completionState][]Completion),
	}

	return e.recurse(completionState{index: 0, placed: 0, lastWasTent: false})
}

// recurse returns every legal completion of line[st.index:] given that
// st.placed tents have already been placed to the left and st.lastWasTent
// records whether index-1 was a tent.
func (e *enumerator) recurse(st completionState) []Completion {
	length := len(e.line)
	if st.index == length {
		if st.placed == e.target {
			return []Completion{{}}
		}
		return nil
	}

	if cached, ok := e.memo[st]; ok {
		return cached
	}

	var out []Completion

	if e.line[st.index] == tentboard.Tree {
		for _, suffix := range e.recurse(completionState{index: st.index + 1, placed: st.placed, lastWasTent: false}) {
			out = append(out, prepend(tentboard.Tree, suffix))
		}
		e.memo[st] = out
		return out
	}

	// Prune (a): already over budget.
	if st.placed > e.target {
		e.memo[st] = nil
		return nil
	}
	// Prune (b): even placing a tent in every remaining non-tree cell
	// couldn't reach the target.
	remaining := length - st.index
	remainingTrees := e.treeSuffix[st.index]
	if st.placed+(remaining-remainingTrees) < e.target {
		e.memo[st] = nil
		return nil
	}

	if e.fixed[st.index] {
		switch e.line[st.index] {
		case tentboard.Tent:
			if st.lastWasTent {
				e.memo[st] = nil
				return nil
			}
			for _, suffix := range e.recurse(completionState{index: st.index + 1, placed: st.placed + 1, lastWasTent: true}) {
				out = append(out, prepend(tentboard.Tent, suffix))
			}
		case tentboard.Grass:
			for _, suffix := range e.recurse(completionState{index: st.index + 1, placed: st.placed, lastWasTent: false}) {
				out = append(out, prepend(tentboard.Grass, suffix))
			}
		}
		e.memo[st] = out
		return out
	}

	// Free cell: try TENT (if legal), then GRASS.
	if !st.lastWasTent {
		for _, suffix := range e.recurse(completionState{index: st.index + 1, placed: st.placed + 1, lastWasTent: true}) {
			out = append(out, prepend(tentboard.Tent, suffix))
		}
	}
	for _, suffix := range e.recurse(completionState{index: st.index + 1, placed: st.placed, lastWasTent: false}) {
		out = append(out, prepend(tentboard.Grass, suffix))
	}

	e.memo[st] = out
	return out
}

// prepend returns a new Completion with value followed by suffix,
// leaving suffix untouched (it may be shared via the memo cache).
func prepend(value tentboard.CellState, suffix Completion) Completion {
	out := make(Completion, 0, len(suffix)+1)
	out = append(out, value)
	out = append(out, suffix...)
	return out
}
