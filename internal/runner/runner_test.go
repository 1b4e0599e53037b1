package runner

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
)

func TestRunner_SucceededAccumulatesTotal(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, core.NewErrorLog(), false)

	res := r.Run(Step{Title: "Package manager caches", Action: func() Outcome {
		return Outcome{Confirmation: ui.UserAccepted, Freed: 1 << 20, FreedKnown: true}
	}})
	require.Equal(t, Succeeded, res.State)
	assert.EqualValues(t, 1<<20, res.Freed)

	r.Run(Step{Title: "Trash", Action: func() Outcome {
		return Outcome{Confirmation: ui.AutoAccepted, Freed: 1 << 10, FreedKnown: true}
	}})
	assert.EqualValues(t, 1<<20+1<<10, r.TotalFreed())
	assert.Contains(t, out.String(), "▸")
	assert.Contains(t, out.String(), "Package manager caches")
}

func TestRunner_DeclinedContributesNothing(t *testing.T) {
	for _, c := range []ui.Confirmation{ui.UserDeclined, ui.EmptyDefaulted, ui.InvalidDefaulted} {
		var out bytes.Buffer
		r := New(&out, core.NewErrorLog(), false)
		res := r.Run(Step{Title: "Browser caches", Action: func() Outcome {
			// A declined step should never report freed bytes, but even if
			// it does the runner must zero them out.
			return Outcome{Confirmation: c, Freed: 999, FreedKnown: true}
		}})
		assert.Equal(t, SkippedByUser, res.State, c.String())
		assert.EqualValues(t, 0, res.Freed)
		assert.False(t, res.FreedKnown)
		assert.EqualValues(t, 0, r.TotalFreed())
		assert.Contains(t, out.String(), "skipped")
	}
}

func TestRunner_FailureDoesNotStopTheRun(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, core.NewErrorLog(), false)

	r.Run(Step{Title: "Docker", Action: func() Outcome {
		return Outcome{Confirmation: ui.UserAccepted, Err: errors.New("daemon unreachable")}
	}})
	r.Run(Step{Title: "Trash", Action: func() Outcome {
		return Outcome{Confirmation: ui.UserAccepted, Freed: 512, FreedKnown: true}
	}})

	results := r.Results()
	require.Len(t, results, 2)
	assert.Equal(t, Failed, results[0].State)
	assert.ErrorContains(t, results[0].Err, "daemon unreachable")
	assert.Equal(t, Succeeded, results[1].State)
	assert.EqualValues(t, 512, r.TotalFreed())
	assert.Contains(t, out.String(), "failed after")
}

func TestRunner_FastModeSkipsWithoutInvokingAction(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, core.NewErrorLog(), true)

	invoked := false
	res := r.Run(Step{Title: "Stale caches", SkipInFast: true, Action: func() Outcome {
		invoked = true
		return Outcome{Confirmation: ui.UserAccepted}
	}})
	assert.Equal(t, SkippedFastMode, res.State)
	assert.False(t, invoked)
	assert.Contains(t, out.String(), "skipped (fast mode)")

	// Steps not marked SkipInFast still run in fast mode.
	res = r.Run(Step{Title: "Trash", Action: func() Outcome {
		return Outcome{Confirmation: ui.UserAccepted, Freed: 1, FreedKnown: true}
	}})
	assert.Equal(t, Succeeded, res.State)
}

func TestRunner_UnknownFreedOmittedFromTotal(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, core.NewErrorLog(), false)
	res := r.Run(Step{Title: "Homebrew", Action: func() Outcome {
		return Outcome{Confirmation: ui.UserAccepted, FreedKnown: false}
	}})
	assert.Equal(t, Succeeded, res.State)
	assert.EqualValues(t, 0, r.TotalFreed())
	assert.NotContains(t, out.String(), "freed")
}

func TestRunner_SummaryReportsProblemCount(t *testing.T) {
	errs := core.NewErrorLog()
	errs.Append("remove /tmp/x: busy")
	errs.Append("brew cleanup: exit status 1")

	var out bytes.Buffer
	r := New(&out, errs, false)
	r.Summary()

	assert.Contains(t, out.String(), "Total:")
	assert.Contains(t, out.String(), "2 problem(s) during cleanup")
}

func TestRunner_SummaryQuietWhenClean(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, core.NewErrorLog(), false)
	r.Summary()
	assert.NotContains(t, out.String(), "problem")
}
