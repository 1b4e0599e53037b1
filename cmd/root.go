package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/logging"
)

var (
	// Global flags
	debug  bool
	dryRun bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "dm",
	Short: "Deep clean your development machine",
	Long: `Devmole - Deep clean your development machine.

Walks a fixed sequence of cleanup steps (package manager caches, IDE
build artifacts, container engine data, trash, stale app caches), asks
for per-step confirmation, and reports the space reclaimed. Deletion is
confined to your home directory; symlinks pointing elsewhere are never
followed into.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Configure(debug)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
