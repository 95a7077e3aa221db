package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/steffn/winsweep/internal/core"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("winsweep %s\n", appVersion)
		fmt.Printf("  commit:  %s\n", appCommit)
		fmt.Printf("  built:   %s\n", appDate)
		fmt.Printf("  go:      %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  windows: %s\n", core.WindowsVersionString())
	},
}
