// Package fs provides the filesystem adapter.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Exists reports whether path exists.
func (w *Workspace) Exists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &domain.IOError{Op: "stat", Path: path, Err: err}
	}
	return true, nil
}

// EnsureDir creates path and any missing parents.
func (w *Workspace) EnsureDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return &domain.IOError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// RemoveAll deletes path and everything below it.
//
// os.RemoveAll leaves read-only directories it cannot empty in place and
// reports the first failure; a path that still exists afterwards is treated
// as a failure as well.
func (w *Workspace) RemoveAll(path string) error {
	if err := os.RemoveAll(filepath.Clean(path)); err != nil {
		return &domain.IOError{Op: "remove", Path: path, Err: err}
	}
	if _, err := os.Lstat(path); err == nil {
		return &domain.IOError{Op: "remove", Path: path, Err: fs.ErrExist}
	}
	return nil
}
