// Package fs locates the repository root on the filesystem.
package fs

import (
	"path/filepath"

	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator implements ports.RootLocator by walking up from a start directory
// until it finds a directory containing the marker entry.
type Locator struct {
	fs     FileSystem
	marker string
}

// NewLocator creates a Locator backed by the real filesystem.
func NewLocator(marker string) *Locator {
	return NewLocatorWithFS(NewOSFS(), marker)
}

// NewLocatorWithFS creates a Locator backed by fsys.
func NewLocatorWithFS(fsys FileSystem, marker string) *Locator {
	if marker == "" {
		marker = domain.DefaultMarker
	}
	return &Locator{fs: fsys, marker: marker}
}

// Locate returns the nearest ancestor of start (start included) that contains
// the marker. The marker may be a file or a directory.
func (l *Locator) Locate(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve start directory"), "start", start)
	}

	for {
		if _, err := l.fs.Stat(filepath.Join(dir, l.marker)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	err = zerr.With(domain.ErrRootNotFound, "start", start)
	return "", zerr.With(err, "marker", l.marker)
}
