// Package launcher starts the terminal as a detached child process.
package launcher

import (
	"github.com/quantmind-br/githere/internal/errs"
	"github.com/rs/zerolog"
)

// Request is everything needed to create the child process.
type Request struct {
	Executable string
	Dir        string
	// Args is the full argument vector, Args[0] being the executable.
	Args []string
}

// NewRequest builds argv = [exe, cdFlag+dir].
func NewRequest(exe, dir, cdFlag string) Request {
	return Request{
		Executable: exe,
		Dir:        dir,
		Args:       []string{exe, cdFlag + dir},
	}
}

// Starter creates a process for a Request and returns once it exists. It
// does not wait for the process or keep any reference to it.
type Starter interface {
	Start(req Request) error
}

// Launcher builds requests and hands them to a Starter.
type Launcher struct {
	starter Starter
	cdFlag  string
	log     *zerolog.Logger
}

// New creates a Launcher.
func New(starter Starter, cdFlag string, log *zerolog.Logger) *Launcher {
	return &Launcher{
		starter: starter,
		cdFlag:  cdFlag,
		log:     log,
	}
}

// NewDefault creates a Launcher over the operating system.
func NewDefault(cdFlag string, log *zerolog.Logger) *Launcher {
	return New(NewOSStarter(), cdFlag, log)
}

// Start launches exe rooted at dir. A failed attempt is reported once and
// never retried.
func (l *Launcher) Start(exe, dir string) error {
	req := NewRequest(exe, dir, l.cdFlag)

	l.log.Debug().
		Str("executable", req.Executable).
		Str("dir", req.Dir).
		Str("command_line", req.CommandLine()).
		Msg("starting process")

	if err := l.starter.Start(req); err != nil {
		if errs.GetCode(err) != "" {
			return err
		}
		return errs.Wrap(err, errs.SystemCallFailed, "start process").
			WithDetail("executable", exe).
			WithDetail("dir", dir)
	}
	return nil
}

// MockStarter is a mock implementation of Starter for testing
type MockStarter struct {
	StartFunc func(req Request) error
	Requests  []Request
}

// Start implements Starter.Start
func (m *MockStarter) Start(req Request) error {
	m.Requests = append(m.Requests, req)
	if m.StartFunc != nil {
		return m.StartFunc(req)
	}
	return nil
}
