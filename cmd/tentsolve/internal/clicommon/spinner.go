package clicommon

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps github.com/briandowns/spinner, matching
// eng618-parable-bloom/pkg/ui.Spinner's start/stop shape, but suppressing
// itself under --trace instead of --verbose (a running spinner and
// interleaved debug log lines fight over the same terminal line).
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner with suffix msg.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner unless tracing is enabled.
func (sp *Spinner) Start() {
	if !TraceEnabled {
		sp.s.Start()
	}
}

// Stop stops the spinner.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}
