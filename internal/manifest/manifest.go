// Package manifest synthesizes the package.json of a new project.
package manifest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/haluker/create-app/internal/filesystem"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"golang.org/x/mod/semver"
)

// FileName is the manifest file written to the project root.
const FileName = "package.json"

const initialVersion = "0.1.0"

// Entry is one key of an ordered JSON object.
type Entry struct {
	Key   string
	Value string
}

// Document is the generated project descriptor. Scripts and AutoLoad keep
// their declaration order in the written file.
type Document struct {
	Name     string
	Version  string
	Private  bool
	Scripts  []Entry
	AutoLoad []Entry
}

// New returns the manifest of a fresh Haluka.js app called name.
func New(name string) *Document {
	return &Document{
		Name:    name,
		Version: initialVersion,
		Private: true,
		Scripts: []Entry{
			{"clean-assets", "rm -rf ./public/css"},
			{"assets", "haluka run assets"},
			{"dev", "npm run clean-assets && npm run assets && ignite"},
			{"start", "ignite"},
			{"build", "ignite-build"},
		},
		AutoLoad: []Entry{
			{"Haluka", "@haluka/core/build/src/ServiceProviders"},
		},
	}
}

// Validate checks the fields a package manager refuses to work without.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("manifest name is required")
	}
	v := "v" + d.Version
	if !semver.IsValid(v) || semver.Canonical(v) != v {
		return fmt.Errorf("invalid manifest version %q", d.Version)
	}
	return nil
}

// Marshal renders the document as two-space indented JSON ending in a newline.
func (d *Document) Marshal() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	data := []byte("{}")
	set := func(path string, value interface{}) error {
		var err error
		data, err = sjson.SetBytes(data, path, value)
		if err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
		return nil
	}

	if err := set("name", d.Name); err != nil {
		return nil, err
	}
	if err := set("version", d.Version); err != nil {
		return nil, err
	}
	if err := set("private", d.Private); err != nil {
		return nil, err
	}
	for _, s := range d.Scripts {
		if err := set("scripts."+escapeKey(s.Key), s.Value); err != nil {
			return nil, err
		}
	}
	for _, a := range d.AutoLoad {
		if err := set("autoLoad."+escapeKey(a.Key), a.Value); err != nil {
			return nil, err
		}
	}

	out := pretty.PrettyOptions(data, &pretty.Options{Indent: "  ", Width: 80})
	return append(bytes.TrimRight(out, "\n"), '\n'), nil
}

// Write stores the document as package.json under root.
func Write(fs filesystem.FileSystem, root string, d *Document) (string, error) {
	data, err := d.Marshal()
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, FileName)
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", FileName, err)
	}

	return path, nil
}

var keyEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

func escapeKey(key string) string {
	return keyEscaper.Replace(key)
}
