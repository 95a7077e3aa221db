package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/steffn/winsweep/internal/analyze"
	"github.com/steffn/winsweep/internal/config"
	"github.com/steffn/winsweep/internal/core"
	"github.com/steffn/winsweep/internal/ui"
)

var (
	analyzeTop      int
	analyzeDepth    int
	analyzeMinSize  string
	analyzeExclude  []string
	analyzeTree     bool
	analyzeSkipDups bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Scan a directory tree and report where the space went",
	Long: `Walks the given directory (the system drive by default) and prints a
disk usage report: the largest files, space by file type, duplicate
candidates, and files untouched for half a year. Nothing is deleted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := config.SystemDrive()
		if len(args) == 1 {
			root = args[0]
		}

		var minSize int64
		if analyzeMinSize != "" {
			var err error
			minSize, err = core.ParseSize(analyzeMinSize)
			if err != nil {
				return err
			}
		}

		scanner := analyze.NewScanner(runtime.NumCPU()*2, analyzeExclude)
		entry, err := scanner.Scan(root)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", root, err)
		}
		ui.Debugf("scanned %d entries", scanner.ScannedCount())

		analyze.WriteHeader(os.Stdout, root)

		if analyzeTree {
			analyze.WriteTree(os.Stdout, entry, analyzeDepth, minSize)
			return nil
		}

		report := analyze.BuildReport(entry, analyze.ReportOptions{
			Top:            analyzeTop,
			SkipDuplicates: analyzeSkipDups,
		})
		report.Errors = append(report.Errors, scanner.Errors()...)
		report.Write(os.Stdout)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 20, "number of entries per report table")
	analyzeCmd.Flags().IntVar(&analyzeDepth, "depth", 3, "directory depth shown in tree mode")
	analyzeCmd.Flags().StringVar(&analyzeMinSize, "min-size", "", "hide tree entries smaller than this (e.g. 10MB)")
	analyzeCmd.Flags().StringSliceVar(&analyzeExclude, "exclude", nil, "directory names to skip while scanning")
	analyzeCmd.Flags().BoolVar(&analyzeTree, "tree", false, "print a size-annotated directory tree instead of the report")
	analyzeCmd.Flags().BoolVar(&analyzeSkipDups, "skip-duplicates", false, "skip the duplicate-file pass (faster on large trees)")
}
