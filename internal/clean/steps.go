// Package clean assembles the fixed, ordered list of cleanup steps and the
// batches of paths each one hands to the guarded deleter.
package clean

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/devmole/internal/config"
	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/runner"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
	"github.com/lakshaymaurya-felt/devmole/pkg/whitelist"
)

// Options carries the run-level state every step action shares: the
// designated root, the run flags, the confirmation gate, the error log and
// the user's whitelist.
type Options struct {
	Root   string
	DryRun bool
	Fast   bool

	// Categories filters the step list; empty means all steps.
	Categories map[string]bool

	Gate      *ui.Gate
	Errs      *core.ErrorLog
	Whitelist *whitelist.Whitelist
	Out       io.Writer
}

// Steps returns the cleanup steps for this run in their fixed order.
func Steps(opts Options) []runner.Step {
	var steps []runner.Step
	add := func(category string, s runner.Step) {
		if len(opts.Categories) > 0 && !opts.Categories[category] {
			return
		}
		steps = append(steps, s)
	}

	add("pm", pmStep(opts))
	add("ide", targetStep(opts, "IDE and build caches",
		config.GetTargetsByCategory(opts.Root, "ide")))
	add("browser", targetStep(opts, "Browser caches",
		config.GetTargetsByCategory(opts.Root, "browser")))
	add("docker", dockerStep(opts))
	add("trash", trashStep(opts))
	add("legacy", legacyStep(opts))

	return steps
}

// assembleBatch expands a target list into concrete paths, dropping slow
// targets in fast mode and anything protected by the whitelist or the
// never-delete list.
func assembleBatch(opts Options, targets []config.CleanTarget) []string {
	var batch []string
	for _, t := range targets {
		if opts.Fast && t.Slow {
			continue
		}
		for _, p := range config.ExpandPaths(t.Paths) {
			if opts.Whitelist != nil && opts.Whitelist.IsWhitelisted(p) {
				continue
			}
			if neverDelete(opts.Root, p) {
				continue
			}
			batch = append(batch, p)
		}
	}
	return batch
}

func neverDelete(root, p string) bool {
	cleaned := filepath.Clean(p)
	for _, nd := range config.GetNeverDeletePaths(root) {
		if cleaned == nd {
			return true
		}
	}
	return false
}

// targetStep builds a step that assembles its batch from the given targets,
// confirms, and deletes it guarded. An empty batch (every target dropped in
// fast mode, or everything protected) is not worth a prompt.
func targetStep(opts Options, title string, targets []config.CleanTarget) runner.Step {
	return runner.Step{
		Title: title,
		Action: func() runner.Outcome {
			batch := assembleBatch(opts, targets)
			if len(batch) == 0 {
				fmt.Fprintln(opts.Out, ui.StyleMuted.Render("  nothing to clean"))
				return runner.Outcome{Confirmation: ui.AutoAccepted, FreedKnown: true}
			}
			c := opts.Gate.Confirm(fmt.Sprintf("Clean %s?", strings.ToLower(title)))
			if !c.Accepted() {
				return runner.Outcome{Confirmation: c}
			}
			freed, err := core.DeleteGuarded(opts.Root, batch, opts.DryRun, opts.Out, opts.Errs)
			if err != nil {
				return runner.Outcome{Confirmation: c, Err: err}
			}
			return runner.Outcome{Confirmation: c, Freed: freed, FreedKnown: true}
		},
	}
}

// pmStep removes package manager cache directories and then lets Homebrew
// run its own cleanup, since brew prunes more than its cache directory.
func pmStep(opts Options) runner.Step {
	targets := config.GetTargetsByCategory(opts.Root, "pm")
	return runner.Step{
		Title: "Package manager caches",
		Action: func() runner.Outcome {
			c := opts.Gate.Confirm("Clean package manager caches?")
			if !c.Accepted() {
				return runner.Outcome{Confirmation: c}
			}
			batch := assembleBatch(opts, targets)
			freed, err := core.DeleteGuarded(opts.Root, batch, opts.DryRun, opts.Out, opts.Errs)
			if err != nil {
				return runner.Outcome{Confirmation: c, Err: err}
			}
			if err := brewCleanup(opts.DryRun); err != nil {
				opts.Errs.Append("brew cleanup: %v", err)
				return runner.Outcome{Confirmation: c, Err: err}
			}
			return runner.Outcome{Confirmation: c, Freed: freed, FreedKnown: true}
		},
	}
}

// dockerStep prunes the container engine through its API instead of
// touching its data directory, which lives outside the designated root.
func dockerStep(opts Options) runner.Step {
	return runner.Step{
		Title:      "Container engine data",
		SkipInFast: true,
		Action: func() runner.Outcome {
			c := opts.Gate.Confirm("Prune container engine data (stopped containers, dangling images, build cache)?")
			if !c.Accepted() {
				return runner.Outcome{Confirmation: c}
			}
			freed, known, err := PruneDockerEngine(opts.DryRun, opts.Errs)
			if err != nil {
				return runner.Outcome{Confirmation: c, Err: err}
			}
			return runner.Outcome{Confirmation: c, Freed: freed, FreedKnown: known}
		},
	}
}

// trashStep empties the user's trash, deleting the entries rather than the
// trash directory itself.
func trashStep(opts Options) runner.Step {
	return runner.Step{
		Title: "Trash",
		Action: func() runner.Outcome {
			c := opts.Gate.Confirm("Empty the trash?")
			if !c.Accepted() {
				return runner.Outcome{Confirmation: c}
			}
			batch := filterProtected(opts, ScanTrash(opts.Root))
			freed, err := core.DeleteGuarded(opts.Root, batch, opts.DryRun, opts.Out, opts.Errs)
			if err != nil {
				return runner.Outcome{Confirmation: c, Err: err}
			}
			return runner.Outcome{Confirmation: c, Freed: freed, FreedKnown: true}
		},
	}
}

// legacyStep removes cache folders left behind by applications that have not
// touched them in six months.
func legacyStep(opts Options) runner.Step {
	return runner.Step{
		Title:      "Stale application caches",
		SkipInFast: true,
		Action: func() runner.Outcome {
			c := opts.Gate.Confirm("Remove application caches untouched for 6+ months?")
			if !c.Accepted() {
				return runner.Outcome{Confirmation: c}
			}
			batch := filterProtected(opts, ScanLegacyCaches(opts.Root))
			freed, err := core.DeleteGuarded(opts.Root, batch, opts.DryRun, opts.Out, opts.Errs)
			if err != nil {
				return runner.Outcome{Confirmation: c, Err: err}
			}
			return runner.Outcome{Confirmation: c, Freed: freed, FreedKnown: true}
		},
	}
}

func filterProtected(opts Options, paths []string) []string {
	var out []string
	for _, p := range paths {
		if opts.Whitelist != nil && opts.Whitelist.IsWhitelisted(p) {
			continue
		}
		if neverDelete(opts.Root, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
