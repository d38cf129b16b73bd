//go:build windows

package launcher

import (
	"unsafe"

	"github.com/quantmind-br/githere/internal/errs"
	"golang.org/x/sys/windows"
)

const creationFlags = windows.EXTENDED_STARTUPINFO_PRESENT | windows.CREATE_UNICODE_ENVIRONMENT

// OSStarter creates processes with CreateProcessW.
type OSStarter struct{}

// NewOSStarter creates an OSStarter.
func NewOSStarter() *OSStarter {
	return &OSStarter{}
}

// Start creates the process with no inherited handles, the parent's
// environment, and req.Dir as its working directory. The process and thread
// handles are closed before returning.
func (s *OSStarter) Start(req Request) error {
	appName, err := windows.UTF16PtrFromString(req.Executable)
	if err != nil {
		return errs.Wrap(err, errs.SystemCallFailed, "encode executable path")
	}
	// CreateProcessW may modify the command line buffer in place.
	cmdLine, err := windows.UTF16PtrFromString(req.CommandLine())
	if err != nil {
		return errs.Wrap(err, errs.SystemCallFailed, "encode command line")
	}
	dir, err := windows.UTF16PtrFromString(req.Dir)
	if err != nil {
		return errs.Wrap(err, errs.SystemCallFailed, "encode working directory")
	}

	si := new(windows.StartupInfoEx)
	si.Cb = uint32(unsafe.Sizeof(*si))

	var pi windows.ProcessInformation
	err = windows.CreateProcess(
		appName,
		cmdLine,
		nil,   // process attributes
		nil,   // thread attributes
		false, // inherit handles
		creationFlags,
		nil, // environment: inherit
		dir,
		&si.StartupInfo,
		&pi,
	)
	if err != nil {
		return errs.Wrap(err, errs.SystemCallFailed, "CreateProcess").
			WithDetail("executable", req.Executable).
			WithDetail("dir", req.Dir)
	}

	h := processHandles{process: pi.Process, thread: pi.Thread}
	defer h.Close()
	return nil
}

// processHandles owns the handles CreateProcess returns.
type processHandles struct {
	process windows.Handle
	thread  windows.Handle
}

// Close releases both handles. The child keeps running.
func (h *processHandles) Close() {
	if h.thread != 0 {
		windows.CloseHandle(h.thread)
		h.thread = 0
	}
	if h.process != 0 {
		windows.CloseHandle(h.process)
		h.process = 0
	}
}
