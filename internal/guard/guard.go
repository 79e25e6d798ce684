// Package guard verifies that a project directory can be scaffolded safely.
package guard

import (
	"fmt"
	"path/filepath"

	"github.com/haluker/create-app/internal/filesystem"
	"github.com/haluker/create-app/internal/logging"
	"github.com/rs/zerolog"
)

// Conflict is a pre-existing entry that blocks scaffolding.
type Conflict struct {
	Name  string
	IsDir bool
}

// PermissionError reports a parent directory the user cannot write to.
type PermissionError struct {
	Dir string
	Err error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("directory %s is not writable: %v", e.Dir, e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// ConflictError reports a project directory holding unexpected entries.
type ConflictError struct {
	Dir       string
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("directory %s contains %d conflicting file(s)", e.Dir, len(e.Conflicts))
}

// Guard runs the pre-flight checks on a project root.
type Guard struct {
	fs  filesystem.FileSystem
	log zerolog.Logger
}

// New creates a Guard
func New(fs filesystem.FileSystem) *Guard {
	return &Guard{
		fs:  fs,
		log: logging.GetLogger("guard"),
	}
}

// CheckWritable verifies the parent of root is writable.
func (g *Guard) CheckWritable(root string) error {
	parent := filepath.Dir(root)
	if err := g.fs.CheckWritable(parent); err != nil {
		g.log.Debug().Err(err).Str("dir", parent).Msg("Parent directory not writable")
		return &PermissionError{Dir: parent, Err: err}
	}
	return nil
}

// EnsureEmpty creates root if needed and fails when it holds anything
// outside the allow-list.
func (g *Guard) EnsureEmpty(root string) error {
	if err := g.fs.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", root, err)
	}

	conflicts, err := g.Conflicts(root)
	if err != nil {
		return err
	}

	if len(conflicts) > 0 {
		return &ConflictError{Dir: root, Conflicts: conflicts}
	}

	return nil
}

// Conflicts lists the direct children of root that are not allow-listed,
// sorted by name.
func (g *Guard) Conflicts(root string) ([]Conflict, error) {
	entries, err := g.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	var conflicts []Conflict
	for _, entry := range entries {
		isDir := g.isDir(filepath.Join(root, entry.Name()))
		if Allowed(entry.Name(), isDir) {
			g.log.Trace().Str("name", entry.Name()).Msg("Ignoring allow-listed entry")
			continue
		}
		conflicts = append(conflicts, Conflict{Name: entry.Name(), IsDir: isDir})
	}

	return conflicts, nil
}

// isDir does not follow symlinks; an entry that cannot be stat'ed counts as a file.
func (g *Guard) isDir(path string) bool {
	info, err := g.fs.Lstat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
