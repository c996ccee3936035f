// Package rootlocator resolves the project root by walking up from a
// starting directory until it finds the directory containing the marker
// file (the project's build manifest).
package rootlocator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no ancestor directory up to and including
// the filesystem root contains the marker file.
var ErrNotFound = errors.New("project root not found")

// maxAscent bounds the upward walk. Together with the visited set it
// guards against symlink cycles in the directory hierarchy.
const maxAscent = 256

// Locator finds the nearest ancestor directory containing a marker file.
type Locator struct {
	marker string
}

// New returns a Locator for the given marker file name.
func New(marker string) *Locator {
	return &Locator{marker: marker}
}

// Find walks upward from startDir, returning the absolute path of the
// first directory (startDir included) that contains the marker file.
// Ancestors are canonicalized before being visited, so a symlink cycle
// terminates the walk instead of looping forever.
func (l *Locator) Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve starting directory %q: %w", startDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	visited := make(map[string]struct{}, 8)
	for i := 0; i < maxAscent; i++ {
		if _, seen := visited[dir]; seen {
			break
		}
		visited[dir] = struct{}{}

		// Existence check only; the marker is never parsed.
		if info, err := os.Stat(filepath.Join(dir, l.marker)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root without a hit.
			break
		}
		if resolved, err := filepath.EvalSymlinks(parent); err == nil {
			parent = resolved
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s in %s or any parent directory: %w", l.marker, startDir, ErrNotFound)
}
