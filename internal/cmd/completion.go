package cmd

import (
	"fmt"
	"io"

	"github.com/quantmind-br/githere/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewCompletionCmd creates the completion command
func NewCompletionCmd(log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [powershell|bash|zsh|fish]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for githere.

PowerShell:
  PS> githere completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> githere completion powershell > githere.ps1
  # and source this file from your PowerShell profile.

Bash (Git Bash, MSYS2, WSL):
  $ source <(githere completion bash)

Zsh:
  $ githere completion zsh > "${fpath[1]}/_githere"

Fish:
  $ githere completion fish > ~/.config/fish/completions/githere.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"powershell", "bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			if err := genCompletion(cmd.Root(), shell, cmd.OutOrStdout()); err != nil {
				ui.PrintError("failed to generate %s completion: %v", shell, err)
				return err
			}
			log.Debug().Str("shell", shell).Msg("generated shell completion")
			return nil
		},
	}

	return cmd
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
}
