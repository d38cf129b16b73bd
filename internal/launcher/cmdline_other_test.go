//go:build !windows

package launcher

import shellquote "github.com/kballard/go-shellquote"

func splitCommandLine(line string) ([]string, error) {
	return shellquote.Split(line)
}
