package cmd

import (
	"github.com/quantmind-br/githere/internal/command"
	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/executable"
	"github.com/quantmind-br/githere/internal/explorer"
	"github.com/quantmind-br/githere/internal/launcher"
	"github.com/quantmind-br/githere/internal/locator"
	"github.com/quantmind-br/githere/internal/target"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Env holds the system boundaries the subcommands reach through.
type Env struct {
	Store   locator.Store
	Desktop explorer.Desktop
	Fs      afero.Fs
	Starter launcher.Starter
}

// DefaultEnv talks to the real registry, shell, filesystem and process API.
func DefaultEnv() *Env {
	return &Env{
		Store:   locator.NewRegistryStore(),
		Desktop: explorer.NewClient(),
		Fs:      afero.NewOsFs(),
		Starter: launcher.NewOSStarter(),
	}
}

// Locator builds the install locator from configuration.
func (e *Env) Locator(cfg *config.Config, log *zerolog.Logger) (*locator.Locator, error) {
	locations, err := locator.ParseLocations(cfg.Install.Locations)
	if err != nil {
		return nil, err
	}
	return locator.New(e.Store, locations, cfg.Install.ValueName, log), nil
}

// Finder builds the executable resolver.
func (e *Env) Finder(cfg *config.Config, log *zerolog.Logger) (*executable.Resolver, error) {
	loc, err := e.Locator(cfg, log)
	if err != nil {
		return nil, err
	}
	return executable.NewResolverWithFs(loc, e.Fs, cfg.Install.Executable, log), nil
}

// Command wires the full pipeline.
func (e *Env) Command(cfg *config.Config, log *zerolog.Logger) (*command.Command, error) {
	finder, err := e.Finder(cfg, log)
	if err != nil {
		return nil, err
	}
	return command.New(
		cfg.Command.Title,
		target.NewResolver(e.Desktop, cfg.Shell, log),
		finder,
		launcher.New(e.Starter, cfg.Launch.CdFlag, log),
		log,
	), nil
}
