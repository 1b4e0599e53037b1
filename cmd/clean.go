package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/clean"
	"github.com/lakshaymaurya-felt/devmole/internal/config"
	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/runner"
	"github.com/lakshaymaurya-felt/devmole/internal/status"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
	"github.com/lakshaymaurya-felt/devmole/pkg/whitelist"
)

var (
	cleanYes  bool
	cleanFast bool
)

// cleanCategories maps each category flag to its step category key.
var cleanCategories = []struct {
	flag     string
	category string
	help     string
}{
	{"pm", "pm", "Package manager caches only"},
	{"ide", "ide", "IDE and build caches only"},
	{"browser", "browser", "Browser caches only"},
	{"docker", "docker", "Container engine data only"},
	{"trash", "trash", "Trash only"},
	{"legacy", "legacy", "Stale application caches only"},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free up disk space",
	Long:  "Deep cleanup of caches, build artifacts, container engine data, and trash to reclaim disk space.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd)
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup plan without deleting")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Accept every confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanFast, "fast", false, "Skip the slow steps and targets")
	for _, c := range cleanCategories {
		cleanCmd.Flags().Bool(c.flag, false, c.help)
	}
}

func runClean(cmd *cobra.Command) error {
	home := config.HomeDir()
	if home == "" {
		return fmt.Errorf("cannot determine home directory")
	}
	out := cmd.OutOrStdout()

	wl, err := whitelist.Load(whitelist.DefaultPath())
	if err != nil {
		slog.Warn("whitelist unreadable, continuing without it", "err", err)
		wl = &whitelist.Whitelist{}
	}

	categories := make(map[string]bool)
	for _, c := range cleanCategories {
		if on, _ := cmd.Flags().GetBool(c.flag); on {
			categories[c.category] = true
		}
	}

	errs := core.NewErrorLog()
	gate := ui.NewGate(cmd.InOrStdin(), out, cleanYes)

	if dryRun {
		fmt.Fprintln(out, ui.StyleWarn.Render("dry run: nothing will be deleted"))
	}
	if !cleanYes && !ui.IsInteractive() {
		fmt.Fprintln(out, ui.StyleMuted.Render("no terminal attached, prompts default to No (use --yes to accept)"))
	}

	freeBefore, freeErr := status.FreeBytes(home)

	r := runner.New(out, errs, cleanFast)
	opts := clean.Options{
		Root:       home,
		DryRun:     dryRun,
		Fast:       cleanFast,
		Categories: categories,
		Gate:       gate,
		Errs:       errs,
		Whitelist:  wl,
		Out:        out,
	}
	for _, step := range clean.Steps(opts) {
		r.Run(step)
	}
	r.Summary()

	if freeErr == nil && !dryRun {
		if freeAfter, err := status.FreeBytes(home); err == nil {
			fmt.Fprintf(out, "%s %s → %s\n",
				ui.StyleMuted.Render("Free space:"),
				core.HumanSize(int64(freeBefore)),
				core.HumanSize(int64(freeAfter)))
		}
	}

	return nil
}
