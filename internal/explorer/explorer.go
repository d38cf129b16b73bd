// Package explorer provides utilities for inspecting the Windows shell:
// the foreground window, open Explorer windows and the desktop folder.
package explorer

import (
	"fmt"
	"net/url"
	"strings"
)

// Window is a top-level window.
type Window struct {
	Handle uintptr
	Class  string
}

// ShellWindow is an open Explorer window as reported by Shell.Application.
type ShellWindow struct {
	Handle      uintptr
	LocationURL string
	Name        string
}

// Desktop is the view of the interactive session the target resolver needs.
// It allows for fakes in tests and a stub on platforms without a shell.
type Desktop interface {
	// ForegroundWindow returns the window that currently has focus.
	ForegroundWindow() (Window, error)

	// ShellWindows lists the Explorer windows open in the session.
	ShellWindows() ([]ShellWindow, error)

	// DesktopDir returns the path of the user's Desktop known folder.
	DesktopDir() (string, error)
}

// FindWindowByHandle returns the first window with the given handle.
func FindWindowByHandle(windows []ShellWindow, handle uintptr) *ShellWindow {
	for i := range windows {
		if windows[i].Handle == handle {
			return &windows[i]
		}
	}
	return nil
}

// PathFromURL converts a file: URL as reported by Explorer into a Windows
// path. Drive URLs (file:///C:/x) become C:\x and host URLs
// (file://server/share/x) become \\server\share\x.
func PathFromURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty location URL")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse location URL %q: %w", raw, err)
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", fmt.Errorf("location URL %q is not a file URL", raw)
	}

	p := u.Path
	if p == "" {
		p = u.Opaque
	}

	host := u.Host
	if strings.EqualFold(host, "localhost") {
		host = ""
	}

	if host != "" {
		share := strings.Trim(p, "/")
		if share == "" {
			return "", fmt.Errorf("location URL %q names a host without a share", raw)
		}
		return `\\` + host + `\` + strings.ReplaceAll(share, "/", `\`), nil
	}

	p = strings.TrimPrefix(p, "/")
	if !hasDrivePrefix(p) {
		return "", fmt.Errorf("location URL %q has no drive", raw)
	}

	path := strings.ReplaceAll(p, "/", `\`)
	if len(path) == 2 {
		// bare "C:" means the drive root
		path += `\`
	}
	if len(path) > 3 {
		path = strings.TrimRight(path, `\`)
	}
	return path, nil
}

func hasDrivePrefix(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return false
	}
	return len(p) == 2 || p[2] == '/'
}
