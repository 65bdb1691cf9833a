package tents

import (
	"context"

	"github.com/ashrey-kulkarni/tentsolve/heuristics"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// Options configures a Solve (or NextMove's lazy Solve) call, forwarding
// to the matching propagate and search options.
type Options struct {
	Cancel      context.Context
	OnCommit    func(heuristics.Move)
	OnDecision  func(tree tentboard.Position, domainSize int)
	OnDeadEnd   func(tree tentboard.Position)
	OnBacktrack func(tree tentboard.Position)
}

// Option is a functional option for Solve and Solver.NextMove.
type Option func(*Options)

// WithCancel registers a context polled between search tree decisions.
func WithCancel(ctx context.Context) Option {
	return func(o *Options) { o.Cancel = ctx }
}

// WithOnCommit registers a hook fired once per cell the propagation
// driver commits.
func WithOnCommit(fn func(heuristics.Move)) Option {
	return func(o *Options) { o.OnCommit = fn }
}

// WithOnDecision registers a hook fired before each search branch decision.
func WithOnDecision(fn func(tree tentboard.Position, domainSize int)) Option {
	return func(o *Options) { o.OnDecision = fn }
}

// WithOnDeadEnd registers a hook fired when a tree's domain is empty.
func WithOnDeadEnd(fn func(tree tentboard.Position)) Option {
	return func(o *Options) { o.OnDeadEnd = fn }
}

// WithOnBacktrack registers a hook fired after a failed search branch is undone.
func WithOnBacktrack(fn func(tree tentboard.Position)) Option {
	return func(o *Options) { o.OnBacktrack = fn }
}

// DefaultOptions returns the baseline configuration: an uncancellable
// context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Cancel:      context.Background(),
		OnCommit:    func(heuristics.Move) {},
		OnDecision:  func(tentboard.Position, int) {},
		OnDeadEnd:   func(tentboard.Position) {},
		OnBacktrack: func(tentboard.Position) {},
	}
}
