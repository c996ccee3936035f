package rootlocator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates an empty file at path, creating parent directories.
func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte{}, 0644))
}

// canonical resolves symlinks in path (t.TempDir may live under a
// symlinked parent, e.g. /private on macOS).
func canonical(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestFind_MarkerInStartDir(t *testing.T) {
	tempDir := t.TempDir()
	touch(t, filepath.Join(tempDir, "setup.py"))

	root, err := New("setup.py").Find(tempDir)
	require.NoError(t, err)
	assert.Equal(t, canonical(t, tempDir), root)
}

func TestFind_NearestAncestorWins(t *testing.T) {
	// Markers at both a/ and a/b/; starting from a/b/c the nearest
	// ancestor a/b must win.
	tempDir := t.TempDir()
	touch(t, filepath.Join(tempDir, "a", "manifest"))
	touch(t, filepath.Join(tempDir, "a", "b", "manifest"))
	startDir := filepath.Join(tempDir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(startDir, 0755))

	root, err := New("manifest").Find(startDir)
	require.NoError(t, err)
	assert.Equal(t, canonical(t, filepath.Join(tempDir, "a", "b")), root)
}

func TestFind_MarkerInGrandparent(t *testing.T) {
	// Start at a/b/c with the marker only at a/b.
	tempDir := t.TempDir()
	touch(t, filepath.Join(tempDir, "a", "b", "manifest"))
	startDir := filepath.Join(tempDir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(startDir, 0755))

	root, err := New("manifest").Find(startDir)
	require.NoError(t, err)
	assert.Equal(t, canonical(t, filepath.Join(tempDir, "a", "b")), root)
}

func TestFind_NotFound(t *testing.T) {
	tempDir := t.TempDir()
	startDir := filepath.Join(tempDir, "x", "y")
	require.NoError(t, os.MkdirAll(startDir, 0755))

	// A marker name no ancestor of the temp dir plausibly contains.
	_, err := New("testctl-locator-absent-marker").Find(startDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestFind_Idempotent(t *testing.T) {
	tempDir := t.TempDir()
	touch(t, filepath.Join(tempDir, "setup.py"))
	startDir := filepath.Join(tempDir, "sub")
	require.NoError(t, os.MkdirAll(startDir, 0755))

	loc := New("setup.py")
	first, err := loc.Find(startDir)
	require.NoError(t, err)
	second, err := loc.Find(startDir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFind_MarkerDirectoryIgnored(t *testing.T) {
	// A directory with the marker's name does not identify a root; the
	// ascent continues to the ancestor holding the marker file.
	tempDir := t.TempDir()
	touch(t, filepath.Join(tempDir, "setup.py"))
	startDir := filepath.Join(tempDir, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(startDir, "setup.py"), 0755))

	root, err := New("setup.py").Find(startDir)
	require.NoError(t, err)
	assert.Equal(t, canonical(t, tempDir), root)
}

func TestFind_SymlinkedStartDir(t *testing.T) {
	tempDir := t.TempDir()
	realDir := filepath.Join(tempDir, "real")
	touch(t, filepath.Join(realDir, "setup.py"))
	linkDir := filepath.Join(tempDir, "link")
	require.NoError(t, os.Symlink(realDir, linkDir))

	// The result is the canonical path, not the symlinked alias.
	root, err := New("setup.py").Find(linkDir)
	require.NoError(t, err)
	assert.Equal(t, canonical(t, realDir), root)
}

func TestFind_RelativeStartDir(t *testing.T) {
	tempDir := t.TempDir()
	touch(t, filepath.Join(tempDir, "setup.py"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	root, err := New("setup.py").Find(".")
	require.NoError(t, err)
	assert.Equal(t, canonical(t, tempDir), root)
}
