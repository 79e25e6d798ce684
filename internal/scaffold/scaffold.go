package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/haluker/create-app/internal/filesystem"
	"github.com/haluker/create-app/internal/logging"
	"github.com/rs/zerolog"
)

//go:embed files
var bundled embed.FS

// renames maps bundled basenames to the names written into the project.
var renames = map[string]string{
	"gitignore":     ".gitignore",
	"env.example":   ".env.example",
	"halukacli.js":  ".halukacli.js",
	"eslintrc.json": ".eslintrc.json",
	// README.md would be picked up as the bundle's own readme
	"README-default.md": "README.md",
}

// Template returns the bundled app template.
func Template() fs.FS {
	sub, err := fs.Sub(bundled, "files")
	if err != nil {
		panic(fmt.Sprintf("bundled template missing: %v", err))
	}
	return sub
}

// TargetName returns the name a bundled file is written under.
func TargetName(name string) string {
	if renamed, ok := renames[name]; ok {
		return renamed
	}
	return name
}

// Copier writes a template tree into a project directory.
type Copier struct {
	fs  filesystem.FileSystem
	log zerolog.Logger
}

// NewCopier creates a Copier
func NewCopier(fs filesystem.FileSystem) *Copier {
	return &Copier{
		fs:  fs,
		log: logging.GetLogger("scaffold"),
	}
}

// Copy writes every file of src under root, keeping relative directories and
// applying the rename table to basenames. It returns the written paths
// relative to root, in walk order.
func (c *Copier) Copy(src fs.FS, root string) ([]string, error) {
	var written []string

	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}

		if d.IsDir() {
			dir := filepath.Join(root, filepath.FromSlash(p))
			if err := c.fs.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			return nil
		}

		data, err := fs.ReadFile(src, p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}

		rel := path.Join(path.Dir(p), TargetName(path.Base(p)))
		dst := filepath.Join(root, filepath.FromSlash(rel))
		if err := c.fs.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}

		c.log.Debug().Str("from", p).Str("to", rel).Msg("Copied template file")
		written = append(written, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return written, nil
}
