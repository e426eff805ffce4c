package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeToken creates the token file at the given path relative to dir,
// creating parent directories as needed.
func writeToken(t *testing.T, dir, rel, token string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(token), 0o600))
}

func TestFindTokenInHomePath(t *testing.T) {
	home := t.TempDir()
	writeToken(t, home, ".thunderbird-mcp-auth", "token-abc")

	token, err := FindTokenIn(home)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestFindTokenInSnapPath(t *testing.T) {
	home := t.TempDir()
	writeToken(t, home, "snap/thunderbird/common/.thunderbird-mcp-auth", "token-snap")

	token, err := FindTokenIn(home)
	require.NoError(t, err)
	assert.Equal(t, "token-snap", token)
}

func TestFindTokenPrefersHomeOverSnap(t *testing.T) {
	home := t.TempDir()
	writeToken(t, home, ".thunderbird-mcp-auth", "token-home")
	writeToken(t, home, "snap/thunderbird/common/.thunderbird-mcp-auth", "token-snap")

	token, err := FindTokenIn(home)
	require.NoError(t, err)
	assert.Equal(t, "token-home", token)
}

func TestFindTokenTrimsWhitespace(t *testing.T) {
	home := t.TempDir()
	writeToken(t, home, ".thunderbird-mcp-auth", "  token-xyz\n")

	token, err := FindTokenIn(home)
	require.NoError(t, err)
	assert.Equal(t, "token-xyz", token)
}

func TestFindTokenNotFound(t *testing.T) {
	home := t.TempDir()

	_, err := FindTokenIn(home)
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))

	// The error must name both checked paths for diagnostics
	assert.Len(t, notFound.Paths, 2)
	assert.Equal(t, filepath.Join(home, ".thunderbird-mcp-auth"), notFound.Paths[0])
	assert.Equal(t, filepath.Join(home, "snap", "thunderbird", "common", ".thunderbird-mcp-auth"), notFound.Paths[1])
	assert.Contains(t, err.Error(), home)
}
