// Package clicommon holds the small pieces of ambient CLI plumbing
// (tracing, rendering, spinner) shared by cmd/tentsolve's subcommands —
// the CLI's analogue of the teacher's pkg/common and pkg/ui, kept out of
// every core package per SPEC_FULL.md §7.
package clicommon

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashrey-kulkarni/tentsolve/heuristics"
	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

// TraceEnabled is set by the root command's --trace flag.
var TraceEnabled = false

// Log is the process-wide zerolog.Logger, writing console-formatted lines
// to stderr. ConfigureLogging sets its level from --trace.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

// ConfigureLogging sets Log's level from the --trace flag: Debug when
// tracing, Info otherwise (so solve/play's own Info-level summaries still
// print without needing --trace).
func ConfigureLogging(trace bool) {
	TraceEnabled = trace
	if trace {
		Log = Log.Level(zerolog.DebugLevel)
	} else {
		Log = Log.Level(zerolog.InfoLevel)
	}
}

// OnCommit returns a propagate.Options-compatible hook that logs each
// forced deduction at debug level — only visible under --trace.
func OnCommit() func(heuristics.Move) {
	return func(m heuristics.Move) {
		Log.Debug().
			Int("row", m.Pos.Row).
			Int("col", m.Pos.Col).
			Str("value", m.Value.String()).
			Msg("propagate: committed move")
	}
}

// OnDecision, OnDeadEnd, and OnBacktrack mirror OnCommit for search's
// three hooks.
func OnDecision() func(tentboard.Position, int) {
	return func(pos tentboard.Position, domainSize int) {
		Log.Debug().Int("row", pos.Row).Int("col", pos.Col).Int("domain", domainSize).
			Msg("search: branching on tree")
	}
}

func OnDeadEnd() func(tentboard.Position) {
	return func(pos tentboard.Position) {
		Log.Debug().Int("row", pos.Row).Int("col", pos.Col).Msg("search: dead end")
	}
}

func OnBacktrack() func(tentboard.Position) {
	return func(pos tentboard.Position) {
		Log.Debug().Int("row", pos.Row).Int("col", pos.Col).Msg("search: backtracking")
	}
}
