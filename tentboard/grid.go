package tentboard

import "strconv"

// Grid is the mutable Size×Size board of CellState values, plus derived
// row/column tent counts kept incrementally so no caller ever needs to
// rescan a row to find out how saturated it is.
//
// Invariants (checked by Set, never by a background pass):
//   - every Puzzle tree position holds Tree, always.
//   - no two Tent cells are 8-adjacent.
//   - RowTentCount[r] <= puzzle.RowTarget[r] for every row, analogously for columns.
type Grid struct {
	puzzle *Puzzle
	cells  [][]CellState

	RowTentCount []int
	ColTentCount []int
}

// NewGrid builds a Grid projected from puzzle: every tree position is
// marked Tree, everything else starts Unknown. This is the grid a fresh
// solve begins from.
func NewGrid(puzzle *Puzzle) *Grid {
	g := emptyGrid(puzzle)
	for _, t := range puzzle.Trees {
		g.cells[t.Row][t.Col] = Tree
	}
	return g
}

// NewGridFromPlayer builds a Grid from a caller-supplied player_grid (the
// §6 external interface), validating that it has the right dimensions and
// TREE set at exactly the puzzle's tree positions. Non-tree cells are
// copied verbatim (Unknown, Tent, or Grass), letting a solve resume from a
// partially-filled board.
func NewGridFromPlayer(puzzle *Puzzle, playerGrid [][]CellState) (*Grid, error) {
	if len(playerGrid) != puzzle.Size {
		return nil, ErrGridSizeMismatch
	}
	for _, row := range playerGrid {
		if len(row) != puzzle.Size {
			return nil, ErrGridSizeMismatch
		}
	}

	g := emptyGrid(puzzle)
	for r := 0; r < puzzle.Size; r++ {
		for c := 0; c < puzzle.Size; c++ {
			isTree := puzzle.IsTree(r, c)
			val := playerGrid[r][c]
			if isTree != (val == Tree) {
				return nil, ErrGridTreeMismatch
			}
			g.cells[r][c] = val
			if val == Tent {
				g.RowTentCount[r]++
				g.ColTentCount[c]++
			}
		}
	}
	return g, nil
}

func emptyGrid(puzzle *Puzzle) *Grid {
	cells := make([][]CellState, puzzle.Size)
	for r := range cells {
		cells[r] = make([]CellState, puzzle.Size)
	}
	return &Grid{
		puzzle:       puzzle,
		cells:        cells,
		RowTentCount: make([]int, puzzle.Size),
		ColTentCount: make([]int, puzzle.Size),
	}
}

// Puzzle returns the immutable Puzzle this Grid was built from.
func (g *Grid) Puzzle() *Puzzle { return g.puzzle }

// Size returns the board's side length.
func (g *Grid) Size() int { return g.puzzle.Size }

// At returns the current value of cell (row,col).
func (g *Grid) At(row, col int) CellState { return g.cells[row][col] }

// Set assigns value to (row,col), maintaining RowTentCount/ColTentCount.
// It is idempotent: setting a cell to its current value is a no-op that
// still returns true. Set refuses to ever change a Tree cell (trees are
// permanent) and refuses a Tent placement that would violate the
// 8-adjacency rule or exceed a row/column budget; callers that already
// proved a placement legal (the common case) pay only the bookkeeping
// cost.
//
// Returns false, meaning the assignment was rejected, instead of
// panicking — the driver (B5) and solver (B6) both treat rejection as
// "this branch of the board is infeasible," a normal control path, not
// an error.
func (g *Grid) Set(row, col int, value CellState) bool {
	cur := g.cells[row][col]
	if cur == value {
		return true
	}
	if cur == Tree || value == Tree {
		return false
	}
	if value == Tent {
		if g.RowTentCount[row] >= g.puzzle.RowTarget[row] {
			return false
		}
		if g.ColTentCount[col] >= g.puzzle.ColTarget[col] {
			return false
		}
		if g.hasAdjacentTent(row, col) {
			return false
		}
	}

	if cur == Tent {
		g.RowTentCount[row]--
		g.ColTentCount[col]--
	}
	g.cells[row][col] = value
	if value == Tent {
		g.RowTentCount[row]++
		g.ColTentCount[col]++
	}
	return true
}

// hasAdjacentTent reports whether any of the 8 neighbours of (row,col) is
// currently a Tent.
func (g *Grid) hasAdjacentTent(row, col int) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if g.puzzle.InBounds(nr, nc) && g.cells[nr][nc] == Tent {
				return true
			}
		}
	}
	return false
}

// CanPlaceTent reports whether Set(row, col, Tent) would succeed, without
// mutating the grid. Used by the solver (B6) to compute a tree's domain
// before committing to a branch.
func (g *Grid) CanPlaceTent(row, col int) bool {
	if g.cells[row][col] != Unknown {
		return false
	}
	if g.RowTentCount[row] >= g.puzzle.RowTarget[row] {
		return false
	}
	if g.ColTentCount[col] >= g.puzzle.ColTarget[col] {
		return false
	}
	return !g.hasAdjacentTent(row, col)
}

// RowRemaining returns RowTarget[row] - RowTentCount[row].
func (g *Grid) RowRemaining(row int) int { return g.puzzle.RowTarget[row] - g.RowTentCount[row] }

// ColRemaining returns ColTarget[col] - ColTentCount[col].
func (g *Grid) ColRemaining(col int) int { return g.puzzle.ColTarget[col] - g.ColTentCount[col] }

// Row returns a copy of row r's cell values.
func (g *Grid) Row(r int) []CellState {
	out := make([]CellState, g.puzzle.Size)
	copy(out, g.cells[r])
	return out
}

// Column returns a copy of column c's cell values.
func (g *Grid) Column(c int) []CellState {
	out := make([]CellState, g.puzzle.Size)
	for r := range out {
		out[r] = g.cells[r][c]
	}
	return out
}

// OrthogonalNeighbors returns the (row,col) positions N, S, W, E of
// (row,col) that lie within the board, in that fixed order — the value
// ordering B6 branches on.
func (g *Grid) OrthogonalNeighbors(row, col int) []Position {
	candidates := [4]Position{
		{row - 1, col}, // N
		{row + 1, col}, // S
		{row, col - 1}, // W
		{row, col + 1}, // E
	}
	out := make([]Position, 0, 4)
	for _, p := range candidates {
		if g.puzzle.InBounds(p.Row, p.Col) {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy of g, sharing the same (read-only) Puzzle.
// Used by search.Solve and tents.Solve to work on a copy, leaving the
// caller's grid untouched.
func (g *Grid) Clone() *Grid {
	out := emptyGrid(g.puzzle)
	for r := range g.cells {
		copy(out.cells[r], g.cells[r])
	}
	copy(out.RowTentCount, g.RowTentCount)
	copy(out.ColTentCount, g.ColTentCount)
	return out
}

// Equal reports whether g and other hold identical cell values. Puzzles
// are assumed identical (same size) by construction; callers comparing
// grids from different puzzles get a well-defined false rather than a panic.
func (g *Grid) Equal(other *Grid) bool {
	if g.puzzle.Size != other.puzzle.Size {
		return false
	}
	for r := 0; r < g.puzzle.Size; r++ {
		for c := 0; c < g.puzzle.Size; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the grid as an ASCII board with row/column targets,
// matching the teacher's print_board-style debugging aid from the Python
// original, kept here as a Stringer rather than a print function.
func (g *Grid) String() string {
	size := g.puzzle.Size
	out := make([]byte, 0, (size+1)*(size+3))
	out = append(out, ' ', ' ', ' ')
	for c := 0; c < size; c++ {
		out = append(out, []byte(strconv.Itoa(g.puzzle.ColTarget[c]))...)
		out = append(out, ' ')
	}
	out = append(out, '\n')
	for r := 0; r < size; r++ {
		out = append(out, []byte(strconv.Itoa(g.puzzle.RowTarget[r]))...)
		out = append(out, '|', ' ')
		for c := 0; c < size; c++ {
			out = append(out, []byte(g.cells[r][c].String())...)
			out = append(out, ' ')
		}
		out = append(out, '\n')
	}
	return string(out)
}
