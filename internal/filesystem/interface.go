package filesystem

import (
	"io/fs"
)

var (
	_ FileSystem = (*OSFileSystem)(nil)
	_ FileSystem = (*MockFileSystem)(nil)
)

// FileSystem provides an abstraction over file operations for testability
type FileSystem interface {
	// File operations
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Lstat(path string) (fs.FileInfo, error)
	Getwd() (string, error)

	// Permission checks
	CheckWritable(path string) error
}
