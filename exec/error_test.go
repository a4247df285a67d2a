package exec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	t.Run("returns exit code from exec error", func(t *testing.T) {
		err := NewExecErr("command failed", 1)
		code, ok := GetExitCode(err)
		require.True(t, ok)
		require.Equal(t, 1, code)
	})

	t.Run("returns false for non-exec error", func(t *testing.T) {
		err := errors.New("some other error")
		code, ok := GetExitCode(err)
		require.False(t, ok)
		require.Zero(t, code)
	})

	t.Run("returns false for nil error", func(t *testing.T) {
		code, ok := GetExitCode(nil)
		require.False(t, ok)
		require.Zero(t, code)
	})

	t.Run("returns nil error for zero exit code", func(t *testing.T) {
		require.NoError(t, NewExecErr("command failed", 0))
	})

	t.Run("returns exit code from wrapped exec error", func(t *testing.T) {
		execErr := NewExecErr("command failed", 2)
		wrappedErr := errors.Join(errors.New("outer error"), execErr)
		code, ok := GetExitCode(wrappedErr)
		require.True(t, ok)
		require.Equal(t, 2, code)

		wrappedErr = fmt.Errorf("additional context: %w", execErr)
		code, ok = GetExitCode(wrappedErr)
		require.True(t, ok)
		require.Equal(t, 2, code)
	})
}
