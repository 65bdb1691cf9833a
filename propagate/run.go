package propagate

import (
	"errors"

	"github.com/ashrey-kulkarni/tentsolve/heuristics"
	"github.com/ashrey-kulkarni/tentsolve/region"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// ErrInfeasible is returned when either the local heuristics or the
// region decomposer prove the board has no legal completion.
var ErrInfeasible = errors.New("propagate: board has no legal completion")

// ErrIterationLimit is returned when Run exceeds its configured pass
// bound without reaching a fixed point — a driver bug, not a hard puzzle.
var ErrIterationLimit = errors.New("propagate: exceeded maximum iteration bound")

// Run drives g toward a fixed point: local heuristics until none fires,
// then one region-decomposition pass, repeated until a full cycle
// commits nothing. It returns nil once the board is stable (whether or
// not it is fully solved — Run never searches), or ErrInfeasible /
// ErrIterationLimit.
func Run(g *tentboard.Grid, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for iter := 0; iter < o.MaxIterations; iter++ {
		anyCommitted := false

		for {
			committed, err := runHeuristicsOnce(g, &o)
			if err != nil {
				return ErrInfeasible
			}
			if !committed {
				break
			}
			anyCommitted = true
		}

		committed, err := region.Apply(g)
		if err != nil {
			return ErrInfeasible
		}
		if committed {
			anyCommitted = true
		}

		if !anyCommitted {
			return nil
		}
	}

	return ErrIterationLimit
}

// runHeuristicsOnce applies every rule in heuristics.All in order,
// committing the first deduction it finds, and reports whether it
// committed anything.
func runHeuristicsOnce(g *tentboard.Grid, o *Options) (bool, error) {
	for _, rule := range heuristics.All {
		move, ok, err := rule(g)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		if !g.Set(move.Pos.Row, move.Pos.Col, move.Value) {
			return false, heuristics.ErrInfeasible
		}
		o.OnCommit(move)
		return true, nil
	}
	return false, nil
}
