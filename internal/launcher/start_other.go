//go:build !windows

package launcher

import (
	"os"

	"github.com/quantmind-br/githere/internal/errs"
)

// OSStarter creates processes with os.StartProcess.
type OSStarter struct{}

// NewOSStarter creates an OSStarter.
func NewOSStarter() *OSStarter {
	return &OSStarter{}
}

// Start creates the process with no inherited files, the parent's
// environment, and req.Dir as its working directory, then releases it.
func (s *OSStarter) Start(req Request) error {
	p, err := os.StartProcess(req.Executable, req.Args, &os.ProcAttr{
		Dir: req.Dir,
		Env: os.Environ(),
	})
	if err != nil {
		return errs.Wrap(err, errs.SystemCallFailed, "start process").
			WithDetail("executable", req.Executable).
			WithDetail("dir", req.Dir)
	}
	return p.Release()
}
