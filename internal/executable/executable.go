// Package executable turns the located install root into a verified path to
// the launcher binary.
package executable

import (
	"path/filepath"
	"strings"

	"github.com/quantmind-br/githere/internal/errs"
	"github.com/quantmind-br/githere/internal/fsops"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// StageExecutable tags failures where the install root exists but the binary
// does not.
const StageExecutable = "executable"

// InstallLocator yields the install root.
type InstallLocator interface {
	Locate() (string, error)
}

// Resolver joins the install root with a fixed relative binary name.
type Resolver struct {
	locator InstallLocator
	fs      afero.Fs
	name    string
	log     *zerolog.Logger
}

// NewResolver creates a Resolver checking existence on the OS filesystem.
func NewResolver(locator InstallLocator, name string, log *zerolog.Logger) *Resolver {
	return NewResolverWithFs(locator, afero.NewOsFs(), name, log)
}

// NewResolverWithFs creates a Resolver over a custom filesystem.
func NewResolverWithFs(locator InstallLocator, fs afero.Fs, name string, log *zerolog.Logger) *Resolver {
	return &Resolver{
		locator: locator,
		fs:      fs,
		name:    name,
		log:     log,
	}
}

// Find returns the absolute path of the binary. Locator failures are
// returned unchanged.
func (r *Resolver) Find() (string, error) {
	root, err := r.locator.Locate()
	if err != nil {
		return "", err
	}

	exe := joinInstallPath(root, r.name)
	if err := fsops.RequireFile(r.fs, exe); err != nil {
		return "", errs.Wrap(err, errs.NotFound, "launcher binary missing from install root").
			WithDetail("stage", StageExecutable).
			WithDetail("install_path", root).
			WithDetail("executable", exe)
	}

	r.log.Debug().Str("executable", exe).Msg("launcher binary found")
	return exe, nil
}

// joinInstallPath keeps the separator style of root. Registry values always
// use backslashes, which filepath.Join would not recognise off Windows.
func joinInstallPath(root, name string) string {
	if strings.Contains(root, `\`) && !strings.Contains(root, "/") {
		return strings.TrimRight(root, `\`) + `\` + strings.ReplaceAll(name, "/", `\`)
	}
	return filepath.Join(root, filepath.FromSlash(name))
}
