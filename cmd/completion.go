package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [powershell|bash|zsh]",
	Short: "Set up shell tab completion",
	Long: `Generate a tab completion script for the given shell. PowerShell is
the default. Load it from your profile, e.g.:

  winsweep completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"powershell", "bash", "zsh"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := "powershell"
		if len(args) == 1 {
			shell = args[0]
		}
		switch shell {
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		case "bash":
			return rootCmd.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		}
		return fmt.Errorf("unsupported shell %q", shell)
	},
}
