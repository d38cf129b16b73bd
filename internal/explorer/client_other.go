//go:build !windows

package explorer

import (
	"runtime"

	"github.com/quantmind-br/githere/internal/errs"
)

// Client reads the live desktop session. Only Windows has one to read.
type Client struct{}

// NewClient creates a Client.
func NewClient() *Client {
	return &Client{}
}

func unsupported(op string) error {
	return errs.Newf(errs.Unsupported, "%s is not available on %s", op, runtime.GOOS)
}

// ForegroundWindow always fails with Unsupported.
func (c *Client) ForegroundWindow() (Window, error) {
	return Window{}, unsupported("foreground window inspection")
}

// ShellWindows always fails with Unsupported.
func (c *Client) ShellWindows() ([]ShellWindow, error) {
	return nil, unsupported("shell window enumeration")
}

// DesktopDir always fails with Unsupported.
func (c *Client) DesktopDir() (string, error) {
	return "", unsupported("desktop folder lookup")
}
