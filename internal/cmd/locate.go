package cmd

import (
	"encoding/json"

	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type locateOutput struct {
	InstallPath string `json:"install_path"`
	Executable  string `json:"executable"`
}

// NewLocateCmd creates the locate command
func NewLocateCmd(cfg *config.Config, log *zerolog.Logger, env *Env) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Show where Git for Windows is installed",
		Long:  `Resolve the install root from the registry and the launcher binary inside it, without starting anything.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceErrors = true
			loc, err := env.Locator(cfg, log)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}
			finder, err := env.Finder(cfg, log)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			root, err := loc.Locate()
			if err != nil {
				printPipelineError(err)
				return err
			}
			exe, err := finder.Find()
			if err != nil {
				printPipelineError(err)
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(locateOutput{InstallPath: root, Executable: exe})
			}

			ui.PrintKeyValue("Install path", root)
			ui.PrintKeyValue("Executable", exe)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	return cmd
}
