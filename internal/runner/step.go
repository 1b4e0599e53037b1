package runner

import (
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
)

// Step is one named, confirmable unit of cleanup work. The step list is
// assembled once at startup and executed strictly in order.
type Step struct {
	Title string

	// SkipInFast marks steps that fast mode leaves out entirely.
	SkipInFast bool

	// Action asks for confirmation, assembles its batch and deletes it,
	// reporting everything back through the returned Outcome.
	Action func() Outcome
}

// Outcome is what a step action reports back to the runner. It replaces any
// shared variable between action and runner: the runner only ever sees the
// value returned by the call it just made.
type Outcome struct {
	Confirmation ui.Confirmation

	// Err is nil when the step's work succeeded. Confirmation decides
	// whether the work ran at all; Err only describes work that was
	// attempted.
	Err error

	// Freed is the measured byte count reclaimed by the step. It is only
	// meaningful when FreedKnown is set; an unknown figure is not zero.
	Freed      int64
	FreedKnown bool
}

// State is the terminal classification of a step.
type State int

const (
	Succeeded State = iota
	Failed
	SkippedByUser
	SkippedFastMode
)

func (s State) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case SkippedByUser:
		return "skipped"
	case SkippedFastMode:
		return "skipped (fast mode)"
	default:
		return "unknown"
	}
}
