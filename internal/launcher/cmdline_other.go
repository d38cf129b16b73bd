//go:build !windows

package launcher

import shellquote "github.com/kballard/go-shellquote"

// CommandLine renders Args quoted for a POSIX shell. It is informational
// only: the process is started from Args directly.
func (r Request) CommandLine() string {
	return shellquote.Join(r.Args...)
}
