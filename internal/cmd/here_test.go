package cmd

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/quantmind-br/githere/internal/errs"
	"github.com/quantmind-br/githere/internal/explorer"
	"github.com/quantmind-br/githere/internal/launcher"
	"github.com/quantmind-br/githere/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHereCmd_WithPath(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("here", `C:\Program Files\demo`, `D:\ignored`))

	require.Len(t, h.starter.Requests, 1)
	req := h.starter.Requests[0]
	assert.Equal(t, gitRoot+`\git-bash.exe`, req.Executable)
	assert.Equal(t, `C:\Program Files\demo`, req.Dir)
	assert.Equal(t, `--cd=C:\Program Files\demo`, req.Args[1])

	assert.Contains(t, h.out.String(), "Started")
	assert.Contains(t, h.out.String(), "selection")
	assert.Empty(t, h.desktop.Calls)
}

func TestHereCmd_FromDesktop(t *testing.T) {
	h := newHarness(t)
	h.desktop.ForegroundWindowFunc = func() (explorer.Window, error) {
		return explorer.Window{Handle: 0x10010, Class: "Progman"}, nil
	}
	h.desktop.DesktopDirFunc = func() (string, error) {
		return `C:\Users\dev\Desktop`, nil
	}

	require.NoError(t, h.run("here"))

	require.Len(t, h.starter.Requests, 1)
	assert.Equal(t, `C:\Users\dev\Desktop`, h.starter.Requests[0].Dir)
	assert.Zero(t, h.desktop.Calls["ShellWindows"])
}

func TestHereCmd_FromExplorerWindow(t *testing.T) {
	h := newHarness(t)
	h.desktop.ForegroundWindowFunc = func() (explorer.Window, error) {
		return explorer.Window{Handle: 0x2002, Class: "CabinetWClass"}, nil
	}
	h.desktop.ShellWindowsFunc = func() ([]explorer.ShellWindow, error) {
		return []explorer.ShellWindow{
			{Handle: 0x1001, LocationURL: "file:///C:/other"},
			{Handle: 0x2002, LocationURL: "file:///C:/Projects/my%20repo"},
		}, nil
	}

	require.NoError(t, h.run("here"))
	assert.Equal(t, `C:\Projects\my repo`, h.starter.Requests[0].Dir)
}

func TestHereCmd_Failures(t *testing.T) {
	t.Run("unsupported foreground window", func(t *testing.T) {
		h := newHarness(t)
		h.desktop.ForegroundWindowFunc = func() (explorer.Window, error) {
			return explorer.Window{Handle: 1, Class: "Notepad"}, nil
		}

		err := h.run("here")
		assert.True(t, errs.Is(err, errs.Unsupported))
		assert.Empty(t, h.starter.Requests)
		assert.Contains(t, h.errOut.String(), "not a file manager")
	})

	t.Run("install missing", func(t *testing.T) {
		h := newHarness(t)
		h.env.Store = testStore{}

		err := h.run("here", `C:\Projects\demo`)
		assert.True(t, errs.Is(err, errs.NotFound))
		assert.Empty(t, h.starter.Requests)
		assert.Contains(t, h.out.String(), "install-root")
	})

	t.Run("launch fails", func(t *testing.T) {
		h := newHarness(t)
		h.starter.StartFunc = func(launcher.Request) error {
			return errors.New("access denied")
		}

		err := h.run("here", `C:\Projects\demo`)
		assert.True(t, errs.Is(err, errs.SystemCallFailed))
		assert.Contains(t, h.out.String(), "access denied")
	})

	t.Run("quiet prints nothing", func(t *testing.T) {
		h := newHarness(t)
		h.env.Store = testStore{}

		assert.Error(t, h.run("here", "--quiet", `C:\Projects\demo`))
		assert.Empty(t, h.out.String())
		assert.Empty(t, h.errOut.String())
		assert.Empty(t, h.cobraErr.String())
	})

	t.Run("errors are reported once", func(t *testing.T) {
		h := newHarness(t)
		h.env.Store = testStore{}

		assert.Error(t, h.run("here", `C:\Projects\demo`))
		assert.NotEmpty(t, h.errOut.String())
		assert.Empty(t, h.cobraErr.String())
	})
}

// captureStderr swaps os.Stderr for a pipe while fn runs. Loggers must be
// built inside fn so their console writer binds to the pipe.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

func TestHereCmd_QuietKeepsStderrEmpty(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no install", []string{"here", "--quiet", `C:\Projects\demo`}},
		{"virtual folder", []string{"here", "--quiet", "shell:Desktop"}},
		{"unsupported foreground window", []string{"here", "--quiet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.env.Store = testStore{}
			h.desktop.ForegroundWindowFunc = func() (explorer.Window, error) {
				return explorer.Window{Handle: 1, Class: "Notepad"}, nil
			}

			var runErr error
			stderr := captureStderr(t, func() {
				h.log = logging.NewLogger(logging.Config{Level: "debug", NoColor: true})
				runErr = h.run(tt.args...)
			})

			assert.Error(t, runErr)
			assert.Empty(t, stderr)
			assert.Empty(t, h.out.String())
			assert.Empty(t, h.errOut.String())
			assert.Empty(t, h.cobraErr.String())
			assert.Empty(t, h.starter.Requests)
		})
	}
}

func TestHereCmd_ConsoleLoggerWithoutQuiet(t *testing.T) {
	h := newHarness(t)
	h.env.Store = testStore{}

	stderr := captureStderr(t, func() {
		h.log = logging.NewLogger(logging.Config{Level: "debug", NoColor: true})
		assert.Error(t, h.run("here", `C:\Projects\demo`))
	})

	assert.Contains(t, stderr, "command failed")
	assert.Empty(t, h.cobraErr.String())
}

func TestHereCmd_BadConfig(t *testing.T) {
	h := newHarness(t)
	h.cfg.Install.Locations = []string{`HKCR\nope`}

	err := h.run("here", `C:\x`)
	require.Error(t, err)
	assert.Contains(t, h.errOut.String(), "unsupported root")
}
