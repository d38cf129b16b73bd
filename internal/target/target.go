// Package target decides which directory the command applies to.
package target

import (
	"strings"

	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/errs"
	"github.com/quantmind-br/githere/internal/explorer"
	"github.com/rs/zerolog"
)

// Source records which strategy produced a Target.
type Source string

const (
	SourceSelection Source = "selection"
	SourceSite      Source = "site"
	SourceDesktop   Source = "desktop"
	SourceExplorer  Source = "explorer-window"
)

// Target is the resolved working directory.
type Target struct {
	Dir    string
	Source Source
}

// FolderView is the host's "current folder view" service. A site object that
// implements it can answer for the folder the command was invoked in.
type FolderView interface {
	Folder() (Item, error)
}

// Resolver resolves the working directory from a selection, a site, or the
// desktop session.
type Resolver struct {
	desktop explorer.Desktop
	shell   config.ShellConfig
	log     *zerolog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(desktop explorer.Desktop, shell config.ShellConfig, log *zerolog.Logger) *Resolver {
	return &Resolver{
		desktop: desktop,
		shell:   shell,
		log:     log,
	}
}

// Resolve picks the working directory. A non-nil selection is always
// authoritative, including when it is empty; only a nil selection consults
// the site and the desktop session.
func (r *Resolver) Resolve(sel Selection, site interface{}) (Target, error) {
	if sel != nil {
		return r.fromSelection(sel)
	}
	return r.fromEnvironment(site)
}

func (r *Resolver) fromSelection(sel Selection) (Target, error) {
	if sel.Count() == 0 {
		return Target{}, errs.New(errs.NotFound, "selection is empty")
	}

	item, err := sel.Item(0)
	if err != nil {
		return Target{}, coded(err, errs.SystemCallFailed, "read first selected item")
	}

	path, err := item.FileSystemPath()
	if err != nil {
		return Target{}, coded(err, errs.Unsupported, "selected item is not a filesystem location")
	}
	if path == "" {
		return Target{}, errs.New(errs.Unsupported, "selected item has an empty filesystem path")
	}

	return Target{Dir: path, Source: SourceSelection}, nil
}

func (r *Resolver) fromEnvironment(site interface{}) (Target, error) {
	if dir, ok := r.fromSite(site); ok {
		return Target{Dir: dir, Source: SourceSite}, nil
	}

	fg, err := r.desktop.ForegroundWindow()
	if err != nil {
		return Target{}, err
	}

	switch Classify(r.shell, fg.Class) {
	case KindDesktop:
		dir, err := r.desktop.DesktopDir()
		if err != nil {
			return Target{}, err
		}
		return Target{Dir: dir, Source: SourceDesktop}, nil

	case KindExplorer:
		return r.fromExplorerWindow(fg)

	default:
		return Target{}, errs.Newf(errs.Unsupported, "foreground window %q is not a file manager or the desktop", fg.Class).
			WithDetail("class", fg.Class)
	}
}

// fromSite asks the site for its current folder. Every failure falls through.
func (r *Resolver) fromSite(site interface{}) (string, bool) {
	if site == nil {
		return "", false
	}
	view, ok := site.(FolderView)
	if !ok {
		r.log.Debug().Msg("site has no folder view")
		return "", false
	}

	item, err := view.Folder()
	if err != nil || item == nil {
		r.log.Debug().Err(err).Msg("site folder view has no folder")
		return "", false
	}

	dir, err := item.FileSystemPath()
	if err != nil || dir == "" {
		r.log.Debug().Err(err).Msg("site folder is not a filesystem location")
		return "", false
	}
	return dir, true
}

func (r *Resolver) fromExplorerWindow(fg explorer.Window) (Target, error) {
	list, err := r.desktop.ShellWindows()
	if err != nil {
		return Target{}, err
	}

	w := explorer.FindWindowByHandle(list, fg.Handle)
	if w == nil {
		return Target{}, errs.Newf(errs.NotFound, "no Explorer window matches foreground window %#x", fg.Handle).
			WithDetail("handle", fg.Handle)
	}

	dir, err := explorer.PathFromURL(w.LocationURL)
	if err != nil {
		return Target{}, errs.Wrap(err, errs.NotFound, "Explorer window location is not a filesystem path").
			WithDetail("url", w.LocationURL)
	}
	return Target{Dir: dir, Source: SourceExplorer}, nil
}

// WindowKind is how a foreground window class is treated.
type WindowKind string

const (
	KindDesktop     WindowKind = "desktop"
	KindExplorer    WindowKind = "explorer"
	KindUnsupported WindowKind = "unsupported"
)

// Classify maps a window class to its kind. Class names compare
// case-insensitively.
func Classify(shell config.ShellConfig, class string) WindowKind {
	switch {
	case matchClass(class, shell.DesktopClasses):
		return KindDesktop
	case matchClass(class, shell.ExplorerClasses):
		return KindExplorer
	default:
		return KindUnsupported
	}
}

func matchClass(class string, classes []string) bool {
	for _, c := range classes {
		if strings.EqualFold(class, c) {
			return true
		}
	}
	return false
}

// coded keeps err as is when it already carries a code.
func coded(err error, code errs.Code, message string) error {
	if errs.GetCode(err) != "" {
		return err
	}
	return errs.Wrap(err, code, message)
}
