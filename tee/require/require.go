package require

import (
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type tHelper = interface {
	Helper()
}

// FileEquals asserts that the file at path on fs holds exactly expected.
func FileEquals(t require.TestingT, fs afero.Fs, path, expected string, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "reading %q", path)
	require.Equal(t, expected, string(content), msgAndArgs...)
}

// FileContains asserts that the file at path on fs contains expected.
func FileContains(t require.TestingT, fs afero.Fs, path, expected string, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "reading %q", path)
	require.Contains(t, string(content), expected, msgAndArgs...)
}

// NoFile asserts that nothing exists at path on fs.
func NoFile(t require.TestingT, fs afero.Fs, path string, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.False(t, exists, msgAndArgs...)
}
