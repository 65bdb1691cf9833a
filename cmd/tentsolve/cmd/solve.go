package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashrey-kulkarni/tentsolve/cmd/tentsolve/internal/clicommon"
	"github.com/ashrey-kulkarni/tentsolve/movestream"
	"github.com/ashrey-kulkarni/tentsolve/puzzlefile"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
	"github.com/ashrey-kulkarni/tentsolve/tentcache"
	"github.com/ashrey-kulkarni/tentsolve/tents"
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle.json>",
	Short: "Solve a puzzle and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

type solveResult struct {
	grid *tentboard.Grid
	err  error
}

func runSolve(cmd *cobra.Command, args []string) error {
	f, err := puzzlefile.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading puzzle: %w", err)
	}
	puzzle, err := f.Puzzle()
	if err != nil {
		return fmt.Errorf("building puzzle: %w", err)
	}

	var initial *tentboard.Grid
	if f.PlayerGrid != nil {
		initial, err = f.Grid(puzzle)
		if err != nil {
			return fmt.Errorf("building initial grid: %w", err)
		}
	}

	cache, err := openCache()
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	if cache != nil {
		defer cache.Close()

		if cached, found, err := cache.Get(puzzle); err == nil && found {
			clicommon.Log.Info().Msg("solve: served from cache")
			movestream.FillGrass(cached)
			clicommon.RenderGrid(os.Stdout, cached)
			return nil
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	results := make(chan solveResult, 1)
	go func() {
		solved, err := tents.Solve(puzzle, initial,
			tents.WithCancel(ctx),
			tents.WithOnCommit(clicommon.OnCommit()),
			tents.WithOnDecision(clicommon.OnDecision()),
			tents.WithOnDeadEnd(clicommon.OnDeadEnd()),
			tents.WithOnBacktrack(clicommon.OnBacktrack()),
		)
		results <- solveResult{grid: solved, err: err}
	}()

	sp := clicommon.NewSpinner("solving...")
	sp.Start()
	res := <-results
	sp.Stop()

	if res.err != nil {
		switch {
		case errors.Is(res.err, tents.ErrInfeasible):
			return fmt.Errorf("puzzle has no solution")
		case errors.Is(res.err, tents.ErrInterrupted):
			return fmt.Errorf("solve interrupted")
		default:
			return res.err
		}
	}

	// Turn any cell still UNKNOWN into GRASS before printing so the
	// board renders fully resolved.
	movestream.FillGrass(res.grid)
	clicommon.RenderGrid(os.Stdout, res.grid)

	if cache != nil {
		if err := cache.Put(puzzle, res.grid); err != nil {
			clicommon.Log.Warn().Err(err).Msg("solve: failed to write cache entry")
		}
	}
	return nil
}

// openCache opens the solved-puzzle cache unless --no-cache was given.
func openCache() (*tentcache.Cache, error) {
	if noCache {
		return nil, nil
	}
	return tentcache.Open(cacheDir)
}
