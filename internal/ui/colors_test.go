package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	SetOutput(out, errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })
	return out, errOut
}

func TestInitColors(t *testing.T) {
	defer EnableColors()

	t.Run("never", func(t *testing.T) {
		color.NoColor = false
		InitColors("never")
		assert.True(t, color.NoColor)
	})

	t.Run("always ignores NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		color.NoColor = true
		InitColors("always")
		assert.False(t, color.NoColor)
	})

	t.Run("auto with NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		color.NoColor = false
		InitColors("auto")
		assert.True(t, color.NoColor)
	})

	t.Run("auto with TERM=dumb", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("TERM", "dumb")
		color.NoColor = false
		InitColors("auto")
		assert.True(t, color.NoColor)
	})
}

func TestPrintFunctions(t *testing.T) {
	DisableColors()
	defer EnableColors()

	tests := []struct {
		name     string
		print    func()
		toStderr bool
		want     []string
	}{
		{"PrintSuccess", func() { PrintSuccess("launched %s", "git-bash.exe") }, false, []string{"✓", "launched git-bash.exe"}},
		{"PrintError", func() { PrintError("no %s", "install") }, true, []string{"✗", "Error:", "no install"}},
		{"PrintWarning", func() { PrintWarning("value %s", "missing") }, true, []string{"Warning:", "value missing"}},
		{"PrintInfo", func() { PrintInfo("probing %d", 4) }, false, []string{"→", "probing 4"}},
		{"PrintKeyValue", func() { PrintKeyValue("Install path", `C:\Git`) }, false, []string{"Install path:", `C:\Git`}},
		{"PrintHeader", func() { PrintHeader("Diagnostics") }, false, []string{"Diagnostics", "─"}},
		{"PrintSubheader", func() { PrintSubheader("Registry") }, false, []string{"Registry"}},
		{"PrintList", func() { PrintList([]string{"one", "two"}) }, false, []string{"• one", "• two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := captureOutput(t)
			tt.print()

			got, other := out.String(), errOut.String()
			if tt.toStderr {
				got, other = other, got
			}
			assert.Empty(t, other)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestColorizeSource(t *testing.T) {
	DisableColors()
	defer EnableColors()

	for _, s := range []string{"selection", "site", "desktop", "explorer-window", "other"} {
		assert.Equal(t, s, ColorizeSource(s))
	}
}

func TestColorizeStatus(t *testing.T) {
	DisableColors()
	defer EnableColors()

	assert.Equal(t, "ok", ColorizeStatus(true, "ok"))
	assert.Equal(t, "missing", ColorizeStatus(false, "missing"))
}
