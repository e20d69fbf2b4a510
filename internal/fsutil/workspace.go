// Package fsutil provides the file system seam used by tool lifecycles.
package fsutil

import (
	"os"
	"path/filepath"
)

// Workspace abstracts process-level file system queries so tests can
// simulate environments where no working directory is available.
type Workspace interface {
	Getwd() (string, error)
}

// OSWorkspace is the real process environment.
type OSWorkspace struct{}

// Getwd returns the process working directory.
func (OSWorkspace) Getwd() (string, error) {
	return os.Getwd()
}

// FindUp searches for rel in startDir and then in each parent directory up
// to the filesystem root. It returns the first match and true, or "" and
// false if no ancestor contains rel.
func FindUp(startDir, rel string) (string, bool) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, rel)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
