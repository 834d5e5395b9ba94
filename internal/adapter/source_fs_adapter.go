// Package adapter contains filesystem and persistence adapters for classloc.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "classloc.dev/pkg/classloc/internal/model"
)

// ErrProjectRootNotFound is returned when no ancestor carries a root marker.
var ErrProjectRootNotFound = errors.New("project root not found")

// SourceFSAdapter abstracts the read-only filesystem probing the resolver
// relies on. It hides direct `os` access so the domain can be tested against
// fixture trees or fakes.
type SourceFSAdapter interface {
	// Exists reports whether path can be stat'ed. Any error counts as absent.
	Exists(path m.Path) bool

	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FindProjectRoot walks up from startPath and returns the first directory
	// containing any of the markers.
	FindProjectRoot(startPath m.Path, markers []string) (m.Path, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	if path == "" {
		return false
	}

	_, err := os.Stat(string(path))

	return err == nil
}

// IsDir reports whether path is an existing directory.
func (a *LocalSourceFSAdapter) IsDir(path m.Path) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(string(path))

	return err == nil && info.IsDir()
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected project files is the point
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// FindProjectRoot searches for a marker file or directory walking up the
// directory tree. Markers may be nested paths such as "out/production".
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path, markers []string) (m.Path, error) {
	dir := string(startPath)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, marker := range markers {
			if _, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(marker))); statErr == nil {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no marker in any parent directory of %s", ErrProjectRootNotFound, startPath)
		}

		dir = parent
	}
}
