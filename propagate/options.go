package propagate

import "github.com/ashrey-kulkarni/tentsolve/heuristics"

// Options configures a propagation run.
//
// OnCommit      – called once per cell the driver commits, in commit order.
// MaxIterations – safety bound on the number of (heuristics, region) passes;
//
//	a well-formed board converges in far fewer passes than this, so hitting
//	it indicates a driver bug rather than a legitimately hard puzzle.
type Options struct {
	OnCommit      func(heuristics.Move)
	MaxIterations int
}

// Option is a functional option for Run.
type Option func(*Options)

// WithOnCommit registers a hook invoked once per committed cell.
func WithOnCommit(fn func(heuristics.Move)) Option {
	return func(o *Options) {
		o.OnCommit = fn
	}
}

// WithMaxIterations overrides the default pass-count safety bound.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// DefaultOptions returns the baseline configuration: no commit hook, and
// a generous iteration bound.
func DefaultOptions() Options {
	return Options{
		OnCommit:      func(heuristics.Move) {},
		MaxIterations: 10000,
	}
}
