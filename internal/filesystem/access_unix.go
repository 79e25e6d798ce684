//go:build !windows

package filesystem

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func checkWritable(path string) error {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}
