package runner

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
)

// Result is the authoritative record of one executed step.
type Result struct {
	Title      string
	State      State
	Freed      int64
	FreedKnown bool
	Duration   time.Duration
	Err        error
}

// Runner executes cleanup steps one at a time in program order. A failing or
// declined step never stops the run; every step gets its turn and the ledger
// records what happened to each.
type Runner struct {
	out  io.Writer
	errs *core.ErrorLog
	fast bool

	results    []Result
	totalFreed int64
	started    time.Time
}

// New returns a runner writing status lines to out and reading the error
// count from errs at summary time.
func New(out io.Writer, errs *core.ErrorLog, fast bool) *Runner {
	return &Runner{out: out, errs: errs, fast: fast, started: time.Now()}
}

// Run executes a single step: prints its title, invokes the action, measures
// wall-clock duration and classifies the outcome. Skipped steps contribute
// nothing to the run totals.
func (r *Runner) Run(step Step) Result {
	if r.fast && step.SkipInFast {
		res := Result{Title: step.Title, State: SkippedFastMode}
		fmt.Fprintf(r.out, "%s %s\n",
			ui.StyleMuted.Render("−"),
			ui.StyleMuted.Render(step.Title+" — skipped (fast mode)"))
		r.results = append(r.results, res)
		return res
	}

	fmt.Fprintf(r.out, "%s %s\n", ui.StyleTitle.Render("▸"), step.Title)

	start := time.Now()
	out := step.Action()
	dur := time.Since(start).Round(time.Millisecond)

	res := Result{
		Title:      step.Title,
		Freed:      out.Freed,
		FreedKnown: out.FreedKnown,
		Duration:   dur,
		Err:        out.Err,
	}

	switch {
	case !out.Confirmation.Accepted():
		res.State = SkippedByUser
		res.Freed, res.FreedKnown = 0, false
		fmt.Fprintf(r.out, "  %s\n", ui.StyleMuted.Render("skipped"))
	case out.Err != nil:
		res.State = Failed
		fmt.Fprintf(r.out, "  %s\n",
			ui.StyleWarn.Render(fmt.Sprintf("failed after %s: %v", dur, out.Err)))
	default:
		res.State = Succeeded
		if out.FreedKnown {
			r.totalFreed += out.Freed
			fmt.Fprintf(r.out, "  %s\n", ui.StyleSuccess.Render(
				fmt.Sprintf("done in %s, freed %s", dur, core.HumanSize(out.Freed))))
		} else {
			fmt.Fprintf(r.out, "  %s\n",
				ui.StyleSuccess.Render(fmt.Sprintf("done in %s", dur)))
		}
	}

	slog.Debug("step finished",
		"title", step.Title,
		"state", res.State.String(),
		"confirmation", out.Confirmation.String(),
		"freed", out.Freed,
		"freed_known", out.FreedKnown,
		"duration", dur,
		"err", out.Err)

	r.results = append(r.results, res)
	return res
}

// TotalFreed returns the byte total across all succeeded steps.
func (r *Runner) TotalFreed() int64 {
	return r.totalFreed
}

// Results returns the per-step ledger in execution order.
func (r *Runner) Results() []Result {
	return append([]Result(nil), r.results...)
}

// Summary prints the run ledger: total space freed, elapsed time, and a
// warning when any failures were recorded. The full failure list goes to the
// debug log.
func (r *Runner) Summary() {
	elapsed := time.Since(r.started).Round(time.Millisecond)

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s freed in %s\n",
		ui.StyleTitle.Render("Total:"),
		ui.StyleSuccess.Render(core.HumanSize(r.totalFreed)),
		elapsed)

	if n := r.errs.Count(); n > 0 {
		fmt.Fprintf(r.out, "%s\n", ui.StyleWarn.Render(
			fmt.Sprintf("%d problem(s) during cleanup, run with --debug for details", n)))
		for _, rec := range r.errs.Records() {
			slog.Debug("cleanup problem", "seq", rec.Seq, "message", rec.Message)
		}
	}
}
