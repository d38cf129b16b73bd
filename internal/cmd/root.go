package cmd

import (
	"fmt"

	"github.com/quantmind-br/githere/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	return newRootCmd(cfg, log, version, DefaultEnv())
}

func newRootCmd(cfg *config.Config, log *zerolog.Logger, version string, env *Env) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "githere",
		Short: "Open Git Bash in the current folder",
		Long: `githere resolves the folder you are looking at in Explorer (or the paths
you pass) and starts Git Bash rooted there.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logLevel == "" {
				return nil
			}
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			*log = log.Level(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(NewHereCmd(cfg, log, env))
	cmd.AddCommand(NewLocateCmd(cfg, log, env))
	cmd.AddCommand(NewDoctorCmd(cfg, log, env))
	cmd.AddCommand(NewWindowsCmd(cfg, log, env))
	cmd.AddCommand(NewCompletionCmd(log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
