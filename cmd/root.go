package cmd

import (
	"github.com/spf13/cobra"

	"github.com/steffn/winsweep/internal/ui"
)

var (
	// Global flags
	debug bool
	noTUI bool

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
	Use:   "winsweep",
	Short: "Deep clean your Windows, then shut it down",
	Long: `WinSweep - deep clean your Windows machine, then power it off.

Runs a fixed sequence of cache and log cleanups (temp files, prefetch,
thumbnails, update cache, DNS, Recycle Bin, crash dumps), then shuts
down or restarts the machine after a visible countdown.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().BoolVar(&noTUI, "no-tui", false, "Force plain line-oriented output")

	cobra.OnInitialize(func() {
		ui.Debug = debug
	})

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
