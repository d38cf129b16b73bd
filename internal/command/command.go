// Package command is the host-facing command object. It answers the host's
// title/icon/state queries and forwards invocations into the resolve, find,
// launch pipeline.
package command

import (
	"sync"

	"github.com/google/uuid"
	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/errs"
	"github.com/quantmind-br/githere/internal/executable"
	"github.com/quantmind-br/githere/internal/explorer"
	"github.com/quantmind-br/githere/internal/launcher"
	"github.com/quantmind-br/githere/internal/locator"
	"github.com/quantmind-br/githere/internal/target"
	"github.com/rs/zerolog"
)

// CanonicalName identifies the command to the host.
var CanonicalName = uuid.MustParse("C6475E81-139F-4FD9-B758-20B68BA7F60C")

// State is what the host shows for the command.
type State int

const (
	StateEnabled State = iota
	StateDisabled
	StateHidden
)

func (s State) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	case StateHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Flags describe how the host presents the command.
type Flags uint32

// FlagsDefault is a plain, non-split menu entry.
const FlagsDefault Flags = 0

// Phase is a step of a single invocation. Nothing carries over between
// invocations; the phases exist for diagnostics.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseEnabled   Phase = "enabled"
	PhaseResolving Phase = "resolving"
	PhaseLaunched  Phase = "launched"
	PhaseFailed    Phase = "failed"
)

// ExplorerCommand is the operation set a shell host calls on a command.
type ExplorerCommand interface {
	GetTitle(sel target.Selection) string
	GetIcon(sel target.Selection) string
	GetToolTip(sel target.Selection) (string, error)
	GetCanonicalName() uuid.UUID
	GetState(sel target.Selection, okToBeSlow bool) State
	GetFlags() Flags
	Invoke(sel target.Selection) bool
	EnumSubCommands() ([]ExplorerCommand, error)
}

// SiteBinder is the host's back-reference protocol.
type SiteBinder interface {
	SetSite(site interface{})
	GetSite() interface{}
}

// TargetResolver picks the working directory.
type TargetResolver interface {
	Resolve(sel target.Selection, site interface{}) (target.Target, error)
}

// ExecutableFinder locates the binary to launch.
type ExecutableFinder interface {
	Find() (string, error)
}

// ProcessLauncher starts the binary in a directory.
type ProcessLauncher interface {
	Start(exe, dir string) error
}

// Result describes a completed launch.
type Result struct {
	Target     target.Target
	Executable string
}

// Command implements ExplorerCommand and SiteBinder.
type Command struct {
	title    string
	resolver TargetResolver
	finder   ExecutableFinder
	launcher ProcessLauncher
	log      *zerolog.Logger

	mu   sync.RWMutex
	site interface{}
}

// New creates a Command from its collaborators.
func New(title string, resolver TargetResolver, finder ExecutableFinder, launcher ProcessLauncher, log *zerolog.Logger) *Command {
	return &Command{
		title:    title,
		resolver: resolver,
		finder:   finder,
		launcher: launcher,
		log:      log,
	}
}

// NewFromConfig wires the pipeline against the live system.
func NewFromConfig(cfg *config.Config, log *zerolog.Logger) (*Command, error) {
	loc, err := locator.NewFromConfig(cfg, log)
	if err != nil {
		return nil, err
	}
	return New(
		cfg.Command.Title,
		target.NewResolver(explorer.NewClient(), cfg.Shell, log),
		executable.NewResolver(loc, cfg.Install.Executable, log),
		launcher.NewDefault(cfg.Launch.CdFlag, log),
		log,
	), nil
}

// GetTitle returns the menu text.
func (c *Command) GetTitle(_ target.Selection) string {
	return c.title
}

// GetIcon returns the launcher binary as icon source, or "" when it cannot
// be found.
func (c *Command) GetIcon(_ target.Selection) string {
	exe, err := c.finder.Find()
	if err != nil {
		c.log.Debug().Err(err).Msg("no icon")
		return ""
	}
	return exe
}

// GetToolTip is not provided.
func (c *Command) GetToolTip(_ target.Selection) (string, error) {
	return "", errs.New(errs.Unsupported, "no tooltip")
}

// GetCanonicalName returns CanonicalName.
func (c *Command) GetCanonicalName() uuid.UUID {
	return CanonicalName
}

// GetState always reports enabled. Whether the command can run is only
// discovered on Invoke, so the call never does I/O and okToBeSlow is ignored.
func (c *Command) GetState(_ target.Selection, _ bool) State {
	return StateEnabled
}

// GetFlags returns FlagsDefault.
func (c *Command) GetFlags() Flags {
	return FlagsDefault
}

// EnumSubCommands reports that there are none.
func (c *Command) EnumSubCommands() ([]ExplorerCommand, error) {
	return nil, errs.New(errs.Unsupported, "no subcommands")
}

// SetSite stores the host back-reference.
func (c *Command) SetSite(site interface{}) {
	c.mu.Lock()
	c.site = site
	c.mu.Unlock()
}

// GetSite returns the stored host back-reference.
func (c *Command) GetSite() interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.site
}

// Invoke runs the pipeline and reports only whether it completed. The
// failure detail goes to the log; the host never sees it and no dialog is
// shown.
func (c *Command) Invoke(sel target.Selection) bool {
	_, err := c.Run(sel)
	return err == nil
}

// Run executes resolve, find and launch in order, returning the first
// failure unchanged.
func (c *Command) Run(sel target.Selection) (Result, error) {
	log := c.log.With().Str("command", c.title).Logger()
	log.Debug().Str("phase", string(PhaseEnabled)).Bool("selection", sel != nil).Msg("invoked")

	res, err := c.run(sel, &log)
	if err != nil {
		ev := log.Warn().Stack().Err(err).Str("phase", string(PhaseFailed))
		if e, ok := errs.As(err); ok {
			ev = ev.Str("code", string(e.Code)).Fields(e.Details)
		}
		ev.Msg("command failed")
		return Result{}, err
	}

	log.Info().
		Str("phase", string(PhaseLaunched)).
		Str("dir", res.Target.Dir).
		Str("source", string(res.Target.Source)).
		Str("executable", res.Executable).
		Msg("launched")
	log.Debug().Str("phase", string(PhaseIdle)).Msg("done")
	return res, nil
}

func (c *Command) run(sel target.Selection, log *zerolog.Logger) (Result, error) {
	log.Debug().Str("phase", string(PhaseResolving)).Msg("resolving target")

	tgt, err := c.resolver.Resolve(sel, c.GetSite())
	if err != nil {
		return Result{}, err
	}

	exe, err := c.finder.Find()
	if err != nil {
		return Result{}, err
	}

	if err := c.launcher.Start(exe, tgt.Dir); err != nil {
		return Result{}, err
	}

	return Result{Target: tgt, Executable: exe}, nil
}
