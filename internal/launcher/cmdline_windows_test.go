//go:build windows

package launcher

import "golang.org/x/sys/windows"

func splitCommandLine(line string) ([]string, error) {
	return windows.DecomposeCommandLine(line)
}
