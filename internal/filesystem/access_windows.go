//go:build windows

package filesystem

import (
	"os"
)

// Windows has no access(2) equivalent that honours ACLs, so probe with a temp file.
func checkWritable(path string) error {
	f, err := os.CreateTemp(path, ".write-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
