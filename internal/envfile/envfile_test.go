package envfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/i2cjak/durrrrrenv/internal/envfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, envfile.DefaultName), []byte(content), 0644))
}

func TestLocate_FoundInStartDir(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "python_venv\n")

	found, ok, err := envfile.Locate(dir, envfile.DefaultName, 16)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, dir, found)
}

func TestLocate_FoundInParent(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeEnvFile(t, root, "python_venv\n")

	found, ok, err := envfile.Locate(nested, envfile.DefaultName, 16)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, root, found)
}

func TestLocate_NearestAncestorWins(t *testing.T) {
	root := t.TempDir()
	mid := filepath.Join(root, "mid")
	leaf := filepath.Join(mid, "leaf")
	require.NoError(t, os.MkdirAll(leaf, 0755))
	writeEnvFile(t, root, "# outer\n")
	writeEnvFile(t, mid, "# inner\n")

	found, ok, err := envfile.Locate(leaf, envfile.DefaultName, 16)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mid, found)
}

func TestLocate_DepthBound(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeEnvFile(t, root, "python_venv\n")

	// root is 3 levels above nested; a bound of 2 must not reach it.
	_, ok, err := envfile.Locate(nested, envfile.DefaultName, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = envfile.Locate(nested, envfile.DefaultName, 3)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocate_ZeroDepthChecksOnlyStartDir(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "child")
	require.NoError(t, os.MkdirAll(child, 0755))
	writeEnvFile(t, root, "python_venv\n")

	_, ok, err := envfile.Locate(child, envfile.DefaultName, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	writeEnvFile(t, child, "python_venv\n")
	found, ok, err := envfile.Locate(child, envfile.DefaultName, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, child, found)
}

func TestLocate_StopsAtFilesystemRoot(t *testing.T) {
	// A huge depth bound must still terminate at the root.
	_, ok, err := envfile.Locate(t.TempDir(), "no-such-env-file-durrrrrenv", 1<<20)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRead_ReturnsContent(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "source ~/.bashrc\npython_venv\n")

	content, err := envfile.Read(dir, envfile.DefaultName)
	require.NoError(t, err)
	assert.Equal(t, "source ~/.bashrc\npython_venv\n", content)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := envfile.Read(t.TempDir(), envfile.DefaultName)
	assert.Error(t, err)
}
