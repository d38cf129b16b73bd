package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Run("message includes code", func(t *testing.T) {
		err := New(NotFound, "InstallPath missing")
		assert.Equal(t, "NOT_FOUND: InstallPath missing", err.Error())
	})

	t.Run("wrapped cause is reachable", func(t *testing.T) {
		cause := errors.New("access denied")
		err := Wrap(cause, SystemCallFailed, "CreateProcess")

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "caused by: access denied")
	})

	t.Run("wrap of nil behaves like new", func(t *testing.T) {
		err := Wrap(nil, Unsupported, "virtual item")
		assert.Nil(t, err.Cause)
		assert.Equal(t, Unsupported, err.Code)
	})

	t.Run("details", func(t *testing.T) {
		err := New(WrongType, "bad value").WithDetail("type", "REG_DWORD")
		assert.Equal(t, "REG_DWORD", err.Detail("type"))
		assert.Nil(t, err.Detail("missing"))
		assert.Nil(t, New(NotFound, "x").Detail("type"))
	})
}

func TestIsAndGetCode(t *testing.T) {
	inner := New(NotFound, "no key")
	outer := fmt.Errorf("locate: %w", inner)

	assert.True(t, Is(outer, NotFound))
	assert.False(t, Is(outer, WrongType))
	assert.Equal(t, NotFound, GetCode(outer))
	assert.Equal(t, Code(""), GetCode(errors.New("plain")))
	assert.Equal(t, Code(""), GetCode(nil))
	assert.False(t, Is(nil, NotFound))

	e, ok := As(outer)
	require.True(t, ok)
	assert.Same(t, inner, e)
}

func TestIs_OutermostCodeWins(t *testing.T) {
	inner := New(NotFound, "InstallPath missing")
	outer := Wrap(inner, SystemCallFailed, "read install root")

	assert.True(t, Is(outer, SystemCallFailed))
	assert.False(t, Is(outer, NotFound))
	assert.Equal(t, SystemCallFailed, GetCode(fmt.Errorf("locate: %w", outer)))

	got, ok := As(outer)
	require.True(t, ok)
	assert.Same(t, outer, got)
}
