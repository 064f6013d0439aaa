// Package adapter contains filesystem adapters for the exportgen CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/exportgen/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer needs
// when scanning a source tree, so discovery can be tested against fixtures
// without relying on the working directory.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether a regular file exists at path.
	Exists(path m.Path) (bool, error)

	// Glob returns the regular files under root matching pattern. Results are
	// slash-separated, relative to root and sorted lexically. Patterns follow
	// doublestar syntax, so "{ts,tsx}" alternatives are allowed.
	Glob(root m.Path, pattern string) ([]string, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path is an existing regular file.
func (a *LocalSourceFSAdapter) Exists(path m.Path) (bool, error) {
	info, err := a.FileInfo(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// Glob matches files under root. A missing root yields no matches.
func (a *LocalSourceFSAdapter) Glob(root m.Path, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("glob %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q under %s: %w", pattern, root, err)
	}

	sort.Strings(matches)

	return matches, nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
