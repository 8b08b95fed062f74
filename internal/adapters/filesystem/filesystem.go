package filesystem

import (
	"fmt"
	"os"

	"github.com/graysonarts/jdexmd/internal/application"
)

// Filesystem implements ports.Filesystem against the OS.
type Filesystem struct{}

// New creates a new OS-backed filesystem
func New() *Filesystem {
	return &Filesystem{}
}

// DirExists reports whether path exists and is a directory.
func (f *Filesystem) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// FileExists reports whether path exists and is not a directory.
func (f *Filesystem) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return !info.IsDir(), nil
}

// CreateDir is idempotent: an existing directory is fine, an existing
// non-directory is a path conflict.
func (f *Filesystem) CreateDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return &application.PathConflictError{Path: path, Reason: "expected a directory, found a file"}
	case !os.IsNotExist(err):
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to path. Parent directories must already exist
// from earlier CreateDir calls in the walk order.
func (f *Filesystem) WriteFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
