package target

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/githere/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionFromArgs(t *testing.T) {
	sel := SelectionFromArgs([]string{`C:\Projects\demo`, "shell:Desktop", "::{645FF040-5081-101B-9F08-00AA002F954E}"})
	require.Equal(t, 3, sel.Count())

	first, err := sel.Item(0)
	require.NoError(t, err)
	assert.Equal(t, PathItem(`C:\Projects\demo`), first)

	second, _ := sel.Item(1)
	assert.IsType(t, VirtualItem(""), second)
	third, _ := sel.Item(2)
	assert.IsType(t, VirtualItem(""), third)

	_, err = sel.Item(3)
	assert.True(t, errs.Is(err, errs.NotFound))
	_, err = sel.Item(-1)
	assert.True(t, errs.Is(err, errs.NotFound))

	assert.Equal(t, 0, SelectionFromArgs(nil).Count())
}

func TestPathItem(t *testing.T) {
	t.Run("windows absolute paths are kept verbatim", func(t *testing.T) {
		for _, p := range []string{`C:\Projects\demo`, `c:/src`, `\\server\share\dir`} {
			got, err := PathItem(p).FileSystemPath()
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	})

	t.Run("relative paths are made absolute", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		got, err := PathItem("sub").FileSystemPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wd, "sub"), got)
	})

	t.Run("empty is unsupported", func(t *testing.T) {
		_, err := PathItem("").FileSystemPath()
		assert.True(t, errs.Is(err, errs.Unsupported))
	})
}

func TestVirtualItem(t *testing.T) {
	_, err := VirtualItem("shell:RecycleBinFolder").FileSystemPath()
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Unsupported))
	assert.Contains(t, err.Error(), "RecycleBinFolder")
}

func TestIsVirtual(t *testing.T) {
	assert.True(t, IsVirtual("shell:Downloads"))
	assert.True(t, IsVirtual("SHELL:Downloads"))
	assert.True(t, IsVirtual("::{20D04FE0-3AEA-1069-A2D8-08002B30309D}"))
	assert.False(t, IsVirtual(`C:\shell:x`))
	assert.False(t, IsVirtual("."))
}
