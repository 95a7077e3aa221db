package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steffn/winsweep/internal/clean"
	"github.com/steffn/winsweep/internal/core"
	"github.com/steffn/winsweep/internal/elevate"
	"github.com/steffn/winsweep/internal/ui"
)

var cleanDryRun bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the cleanup steps without shutting down",
	Long: `Runs the same seven cleanup steps as the default pipeline but leaves
the machine running. With --dry-run nothing is deleted and no services
are touched; each step reports what it would remove.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cleanDryRun && !elevate.IsElevated() {
			fmt.Println("  Administrative rights are required; requesting elevation...")
			if err := elevate.Relaunch(); err != nil {
				return fmt.Errorf("elevation was refused: %w", err)
			}
			os.Exit(0)
		}

		if cleanDryRun {
			fmt.Println(ui.MutedStyle.Render("  Dry run: nothing will be deleted."))
		}
		fmt.Println()

		runner := &clean.Runner{
			DryRun: cleanDryRun,
			Styled: useTUI(),
		}
		results := runner.Execute(clean.Steps())

		var freed int64
		failed := 0
		for _, res := range results {
			freed += res.Freed
			if res.Err != nil {
				failed++
			}
		}

		fmt.Println()
		verb := "Reclaimed"
		if cleanDryRun {
			verb = "Would reclaim"
		}
		fmt.Printf("  %s %s across %d steps", verb, core.FormatSize(freed), len(results))
		if failed > 0 {
			fmt.Printf(" (%d with errors)", failed)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "report what would be removed without deleting anything")
}
