// Package adapter contains infrastructure adapters for the contractfind CLI.
package adapter

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/contractfind/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning the corpus. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses every regular file below root, at any depth. fn is not
	// called for directories.
	Walk(root m.Path, fn FileWalkFunc) error

	// Open returns a reader for the file at path. Callers close it.
	Open(path m.Path) (io.ReadCloser, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// Exists reports whether path exists.
	Exists(path m.Path) (bool, error)
}

// FileWalkFunc is called once per regular file found by Walk. err is non-nil
// when the entry (or a directory below root) could not be read; returning nil
// skips it and continues the walk.
type FileWalkFunc func(path m.Path, err error) error

// LocalSourceFSAdapter backs SourceFSAdapter with the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root in lexical order. A missing root yields
// no files and no error.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FileWalkFunc) error {
	rootStr := string(root)

	return filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootStr && errors.Is(err, fs.ErrNotExist) {
				return nil
			}

			if cbErr := fn(m.Path(path), err); cbErr != nil {
				return cbErr
			}

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			return walkSymlink(path, fn)
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return fn(m.Path(path), nil)
	})
}

// walkSymlink reports a link whose target is a regular file. Links to
// directories are not followed; broken links are passed to fn as errors.
func walkSymlink(path string, fn FileWalkFunc) error {
	info, err := os.Stat(path)
	if err != nil {
		return fn(m.Path(path), err)
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	return fn(m.Path(path), nil)
}

// Open opens the file for reading.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - corpus paths come from walking the configured root
	return os.Open(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// Exists reports whether the path exists. Errors other than "not found" are
// returned to the caller.
func (a *LocalSourceFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}
