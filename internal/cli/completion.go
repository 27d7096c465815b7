package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyorder/pkg/circuit"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for polyorder.

  $ source <(polyorder completion bash)
  $ polyorder completion zsh > "${fpath[1]}/_polyorder"
  $ polyorder completion fish | source
  PS> polyorder completion powershell | Out-String | Invoke-Expression

Circuit arguments complete to file names and builtin circuit names.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeCircuit offers builtin circuit names alongside file completion.
func completeCircuit(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return circuit.BuiltinNames(), cobra.ShellCompDirectiveDefault
}
