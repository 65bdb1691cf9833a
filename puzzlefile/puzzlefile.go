package puzzlefile

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// ErrNoPlayerGrid is returned by Grid when a File has no player_grid
// section to build from.
var ErrNoPlayerGrid = errors.New("puzzlefile: file has no player_grid")

// File is the on-disk JSON shape: size, trees, row/column targets, and an
// optional player_grid snapshot (int matching tentboard.CellState's
// UNKNOWN=0/TREE=1/TENT=2/GRASS=3 encoding). player_grid is omitted for a
// fresh puzzle and present when resuming a partially-played board.
type File struct {
	Size       int                     `json:"size"`
	Trees      [][2]int                `json:"trees"`
	RowTarget  []int                   `json:"row_target"`
	ColTarget  []int                   `json:"col_target"`
	PlayerGrid [][]tentboard.CellState `json:"player_grid,omitempty"`
}

// Load reads and parses a puzzle file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Save writes f to path as indented JSON.
func Save(path string, f *File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Puzzle builds the tentboard.Puzzle described by f.
func (f *File) Puzzle() (*tentboard.Puzzle, error) {
	trees := make([]tentboard.Position, len(f.Trees))
	for i, t := range f.Trees {
		trees[i] = tentboard.Position{Row: t[0], Col: t[1]}
	}
	return tentboard.NewPuzzle(f.Size, trees, f.RowTarget, f.ColTarget)
}

// Grid builds the Grid described by f's player_grid. Returns
// ErrNoPlayerGrid if f carries none.
func (f *File) Grid(puzzle *tentboard.Puzzle) (*tentboard.Grid, error) {
	if f.PlayerGrid == nil {
		return nil, ErrNoPlayerGrid
	}
	return tentboard.NewGridFromPlayer(puzzle, f.PlayerGrid)
}

// FromGrid snapshots grid's current cell values into f.PlayerGrid, for
// writing a resumable save file.
func FromGrid(f *File, grid *tentboard.Grid) {
	rows := make([][]tentboard.CellState, f.Size)
	for r := range rows {
		rows[r] = grid.Row(r)
	}
	f.PlayerGrid = rows
}
