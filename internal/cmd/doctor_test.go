package cmd

import (
	"testing"

	"github.com/quantmind-br/githere/internal/errs"
	"github.com/quantmind-br/githere/internal/explorer"
	"github.com/quantmind-br/githere/internal/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorCmd(t *testing.T) {
	t.Run("healthy install", func(t *testing.T) {
		h := newHarness(t)
		h.desktop.ForegroundWindowFunc = func() (explorer.Window, error) {
			return explorer.Window{Handle: 7, Class: "CabinetWClass"}, nil
		}
		h.desktop.DesktopDirFunc = func() (string, error) {
			return `C:\Users\dev\Desktop`, nil
		}

		require.NoError(t, h.run("doctor"))

		out := h.out.String()
		assert.Contains(t, out, `HKLM\SOFTWARE\GitForWindows`)
		assert.Contains(t, out, "used")
		assert.Contains(t, out, gitRoot+`\git-bash.exe`)
		assert.Contains(t, out, "CabinetWClass (explorer)")
		assert.Contains(t, out, `C:\Users\dev\Desktop`)
		assert.Contains(t, out, "All critical checks passed!")
		assert.Empty(t, h.starter.Requests)
	})

	t.Run("nothing installed", func(t *testing.T) {
		h := newHarness(t)
		h.env.Store = testStore{}

		err := h.run("doctor")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 issue(s)")
		assert.Contains(t, h.out.String(), "no install location could be opened")
	})

	t.Run("first key open but value missing", func(t *testing.T) {
		h := newHarness(t)
		h.env.Store = testStore{
			`HKLM\SOFTWARE\GitForWindows`: "",
			`HKCU\SOFTWARE\GitForWindows`: gitRoot,
		}

		err := h.run("doctor")
		require.Error(t, err)
		assert.Contains(t, h.out.String(), "shadowed")
	})

	t.Run("binary missing", func(t *testing.T) {
		h := newHarness(t)
		h.env.Store = testStore{`HKLM\SOFTWARE\GitForWindows`: `D:\Git`}

		err := h.run("doctor")
		require.Error(t, err)
		assert.Contains(t, h.out.String(), "git-bash.exe not found in install root")
		assert.Contains(t, h.out.String(), `install root D:\Git is stale`)
	})

	t.Run("session unavailable is only a warning", func(t *testing.T) {
		h := newHarness(t)
		h.desktop.ForegroundWindowFunc = func() (explorer.Window, error) {
			return explorer.Window{}, errs.New(errs.Unsupported, "no desktop session")
		}
		h.desktop.DesktopDirFunc = func() (string, error) {
			return "", errs.New(errs.Unsupported, "no desktop session")
		}

		require.NoError(t, h.run("doctor"))
		assert.Contains(t, h.errOut.String(), "Found 2 warning(s)")
	})
}

func TestSelectedProbe(t *testing.T) {
	results := []locator.ProbeResult{
		{Location: locator.Location{Hive: locator.LocalMachine, Path: "a"}},
		{Location: locator.Location{Hive: locator.LocalMachine, Path: "b"}, Opened: true},
		{Location: locator.Location{Hive: locator.CurrentUser, Path: "c"}, Opened: true, Value: `C:\Git`},
	}

	got := selectedProbe(results)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.Location.Path)

	assert.Nil(t, selectedProbe(results[:1]))
	assert.Nil(t, selectedProbe(nil))
}
