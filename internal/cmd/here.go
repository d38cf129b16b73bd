package cmd

import (
	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/errs"
	"github.com/quantmind-br/githere/internal/logging"
	"github.com/quantmind-br/githere/internal/target"
	"github.com/quantmind-br/githere/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewHereCmd creates the here command
func NewHereCmd(cfg *config.Config, log *zerolog.Logger, env *Env) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "here [path...]",
		Short: "Open Git Bash in a folder",
		Long: `Open Git Bash rooted at a folder.

With arguments the first path is used, as if it had been right-clicked in
Explorer. Without arguments the folder is taken from the foreground window:
the desktop folder when the desktop has focus, or the folder shown by the
focused Explorer window.`,
		Example: `  githere here
  githere here "C:\Program Files\demo"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// failures are reported below, or only through the exit status
			cmd.SilenceErrors = true
			if quiet {
				*log = *quietLogger(cfg, log)
			}

			command, err := env.Command(cfg, log)
			if err != nil {
				if !quiet {
					ui.PrintError("%v", err)
				}
				return err
			}

			var sel target.Selection
			if len(args) > 0 {
				sel = target.SelectionFromArgs(args)
			}

			res, err := command.Run(sel)
			if err != nil {
				if !quiet {
					printPipelineError(err)
				}
				return err
			}

			if !quiet {
				ui.PrintSuccess("Started %s", res.Executable)
				ui.PrintKeyValue("Directory", res.Target.Dir)
				ui.PrintKeyValue("Source", ui.ColorizeSource(string(res.Target.Source)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "report only through the exit status, like the context menu")

	return cmd
}

// quietLogger keeps the level of log but writes to the log file only.
func quietLogger(cfg *config.Config, log *zerolog.Logger) *zerolog.Logger {
	return logging.NewLogger(logging.Config{
		Level:     log.GetLevel().String(),
		LogFile:   cfg.Paths.LogFile,
		NoConsole: true,
	})
}

func printPipelineError(err error) {
	e, ok := errs.As(err)
	if !ok {
		ui.PrintError("%v", err)
		return
	}
	ui.PrintError("%s", e.Message)
	ui.PrintKeyValue("Code", string(e.Code))
	if stage, ok := e.Detail("stage").(string); ok {
		ui.PrintKeyValue("Stage", stage)
	}
	if e.Cause != nil {
		ui.PrintKeyValue("Cause", e.Cause.Error())
	}
}
