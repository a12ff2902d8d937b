package commands

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/clout/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(clout completion bash)

Zsh:
  $ clout completion zsh > "${fpath[1]}/_clout"

Fish:
  $ clout completion fish | source

PowerShell:
  PS> clout completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

// ManHeader is the header of the generated man page
func ManHeader(bin string) *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   strings.ToUpper(bin),
		Section: "1",
		Source:  bin + " " + version.Version,
		Manual:  bin + " manual",
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doc.GenMan(cmd.Root(), ManHeader(cmd.Root().Name()), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf(MsgErrManPage, err)
			}
			return nil
		},
	}
}
