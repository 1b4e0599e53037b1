package cmd

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/analyze"
	"github.com/lakshaymaurya-felt/devmole/internal/config"
	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Explore disk usage",
	Long:  "Interactive disk space analyzer with a navigable tree view. Deletions stay confined to your home directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate deletions made inside the analyzer")
	analyzeCmd.Flags().String("min-size", "", "Minimum size to display (e.g., 100MB)")
	analyzeCmd.Flags().StringSlice("exclude", nil, "Directory names to exclude from the scan")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractive() {
		return fmt.Errorf("analyze needs an interactive terminal")
	}

	home := config.HomeDir()
	path := home
	if len(args) == 1 {
		path = args[0]
	}

	minSizeStr, _ := cmd.Flags().GetString("min-size")
	minSize, err := parseSize(minSizeStr)
	if err != nil {
		return err
	}
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	fmt.Fprintln(cmd.OutOrStdout(), ui.StyleMuted.Render("scanning "+path+"…"))

	scanner := analyze.NewScanner(8, exclude)
	root, err := scanner.Scan(path)
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	for _, w := range scanner.Warnings() {
		cmd.PrintErrln(ui.StyleMuted.Render(w))
	}

	errs := core.NewErrorLog()
	model := analyze.NewModel(root, home, dryRun, minSize, errs)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("analyzer: %w", err)
	}

	if m, ok := final.(analyze.Model); ok && m.FreedTotal() > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			ui.StyleSuccess.Render("Freed"), core.HumanSize(m.FreedTotal()))
	}
	return nil
}

// parseSize converts figures like "100MB" or "2GB" to bytes. Empty means no
// minimum.
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, nil
	}
	mult := int64(1)
	for _, u := range []struct {
		suffix string
		factor int64
	}{
		{"GB", 1 << 30}, {"MB", 1 << 20}, {"KB", 1 << 10}, {"B", 1},
	} {
		if strings.HasSuffix(s, u.suffix) {
			mult = u.factor
			s = strings.TrimSuffix(s, u.suffix)
			break
		}
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return n * mult, nil
}
