package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/clean"
	"github.com/lakshaymaurya-felt/devmole/internal/config"
	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/runner"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
	"github.com/lakshaymaurya-felt/devmole/pkg/whitelist"
)

var (
	purgeYes    bool
	purgeMinAge int
)

var purgeCmd = &cobra.Command{
	Use:   "purge [dir]",
	Short: "Clean project build artifacts",
	Long:  "Find and remove build artifacts (node_modules, target, build, dist, etc.) from project directories.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPurge(cmd, args)
	},
}

func init() {
	purgeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without deleting")
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "Accept the confirmation prompt")
	purgeCmd.Flags().IntVar(&purgeMinAge, "min-age", 7, "Minimum age in days (recent projects are skipped)")
}

func runPurge(cmd *cobra.Command, args []string) error {
	home := config.HomeDir()
	if home == "" {
		return fmt.Errorf("cannot determine home directory")
	}
	out := cmd.OutOrStdout()

	scanRoot := home
	if len(args) == 1 {
		scanRoot = args[0]
	}
	// The scan root itself must sit inside the designated root; otherwise
	// nothing it yields could ever be deleted.
	if v := core.Validate(home, scanRoot); !v.Accepted {
		return fmt.Errorf("%s is outside %s", scanRoot, home)
	}

	wl, err := whitelist.Load(whitelist.DefaultPath())
	if err != nil {
		wl = &whitelist.Whitelist{}
	}

	errs := core.NewErrorLog()
	gate := ui.NewGate(cmd.InOrStdin(), out, purgeYes)
	minAge := time.Duration(purgeMinAge) * 24 * time.Hour

	r := runner.New(out, errs, false)
	r.Run(runner.Step{
		Title: "Project build artifacts",
		Action: func() runner.Outcome {
			artifacts := clean.ScanProjectArtifacts(scanRoot, minAge)
			if len(artifacts) == 0 {
				fmt.Fprintln(out, ui.StyleMuted.Render("  no stale build artifacts found"))
				return runner.Outcome{Confirmation: ui.AutoAccepted, FreedKnown: true}
			}
			for _, p := range artifacts {
				fmt.Fprintf(out, "  %s\n", ui.StyleMuted.Render(p))
			}
			c := gate.Confirm(fmt.Sprintf("Remove these %d artifact directories?", len(artifacts)))
			if !c.Accepted() {
				return runner.Outcome{Confirmation: c}
			}
			var batch []string
			for _, p := range artifacts {
				if !wl.IsWhitelisted(p) {
					batch = append(batch, p)
				}
			}
			freed, err := core.DeleteGuarded(home, batch, dryRun, out, errs)
			if err != nil {
				return runner.Outcome{Confirmation: c, Err: err}
			}
			return runner.Outcome{Confirmation: c, Freed: freed, FreedKnown: true}
		},
	})
	r.Summary()

	return nil
}
