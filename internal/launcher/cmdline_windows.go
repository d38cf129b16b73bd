//go:build windows

package launcher

import "golang.org/x/sys/windows"

// CommandLine renders Args as a CreateProcess command line that
// CommandLineToArgvW splits back into the same vector.
func (r Request) CommandLine() string {
	return windows.ComposeCommandLine(r.Args)
}
