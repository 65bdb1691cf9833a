package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashrey-kulkarni/tentsolve/cmd/tentsolve/internal/clicommon"
	"github.com/ashrey-kulkarni/tentsolve/puzzlefile"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
	"github.com/ashrey-kulkarni/tentsolve/tents"
)

var playCmd = &cobra.Command{
	Use:   "play <puzzle.json>",
	Short: "Reveal one move and save the puzzle file in place",
	Long: `play reveals a single move (the next forced tent, or — once every
tent has been revealed — the next cell that must be grass) and writes it
back into the puzzle file's player_grid, so repeated invocations step
through the puzzle one move at a time.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := puzzlefile.Load(path)
	if err != nil {
		return fmt.Errorf("loading puzzle: %w", err)
	}
	puzzle, err := f.Puzzle()
	if err != nil {
		return fmt.Errorf("building puzzle: %w", err)
	}

	var live *tentboard.Grid
	if f.PlayerGrid != nil {
		live, err = f.Grid(puzzle)
		if err != nil {
			return fmt.Errorf("building live grid: %w", err)
		}
	} else {
		live = tentboard.NewGrid(puzzle)
	}

	solver := tents.New(puzzle)
	move, ok, err := solver.NextMove(live,
		tents.WithOnCommit(clicommon.OnCommit()),
		tents.WithOnDecision(clicommon.OnDecision()),
		tents.WithOnDeadEnd(clicommon.OnDeadEnd()),
		tents.WithOnBacktrack(clicommon.OnBacktrack()),
	)
	if err != nil {
		if errors.Is(err, tents.ErrInfeasible) {
			return fmt.Errorf("puzzle has no solution")
		}
		return err
	}
	if !ok {
		fmt.Fprintln(os.Stdout, "no moves remain, the puzzle is complete")
		clicommon.RenderGrid(os.Stdout, live)
		return nil
	}

	if !live.Set(move.Pos.Row, move.Pos.Col, move.Value) {
		return fmt.Errorf("solver proposed an illegal move at %v", move.Pos)
	}

	fmt.Fprintln(os.Stdout, clicommon.FormatMove(move.Pos, move.Value))
	clicommon.RenderGrid(os.Stdout, live)

	puzzlefile.FromGrid(f, live)
	if err := puzzlefile.Save(path, f); err != nil {
		return fmt.Errorf("saving puzzle: %w", err)
	}
	return nil
}
