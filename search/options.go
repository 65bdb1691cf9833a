package search

import (
	"context"

	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// Options configures a Solve call.
//
// Cancel      – polled once per tree decision (not once per cell); when it's
//
//	done, Solve aborts with ErrInterrupted and the caller's Grid is
//	unaffected — all mutation happens on Solve's own clone.
//
// OnDecision  – called before branching on a tree, with its domain size.
// OnDeadEnd   – called when a tree's domain is empty (immediate backtrack).
// OnBacktrack – called after a branch fails and its edits are undone.
type Options struct {
	Cancel      context.Context
	OnDecision  func(tree tentboard.Position, domainSize int)
	OnDeadEnd   func(tree tentboard.Position)
	OnBacktrack func(tree tentboard.Position)
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithCancel registers a context polled between tree decisions.
func WithCancel(ctx context.Context) Option {
	return func(o *Options) {
		o.Cancel = ctx
	}
}

// WithOnDecision registers a hook fired before each branch decision.
func WithOnDecision(fn func(tree tentboard.Position, domainSize int)) Option {
	return func(o *Options) {
		o.OnDecision = fn
	}
}

// WithOnDeadEnd registers a hook fired when a tree has no legal domain.
func WithOnDeadEnd(fn func(tree tentboard.Position)) Option {
	return func(o *Options) {
		o.OnDeadEnd = fn
	}
}

// WithOnBacktrack registers a hook fired after undoing a failed branch.
func WithOnBacktrack(fn func(tree tentboard.Position)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// DefaultOptions returns the baseline configuration: an uncancellable
// context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Cancel:      context.Background(),
		OnDecision:  func(tentboard.Position, int) {},
		OnDeadEnd:   func(tentboard.Position) {},
		OnBacktrack: func(tentboard.Position) {},
	}
}
