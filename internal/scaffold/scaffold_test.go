package scaffold

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/haluker/create-app/internal/filesystem"
	"github.com/stretchr/testify/require"
)

const testRoot = "/workspace/my-app"

func TestTargetName(t *testing.T) {
	tests := map[string]string{
		"gitignore":         ".gitignore",
		"env.example":       ".env.example",
		"halukacli.js":      ".halukacli.js",
		"eslintrc.json":     ".eslintrc.json",
		"README-default.md": "README.md",
		"other.txt":         "other.txt",
		"README.md":         "README.md",
	}

	for in, out := range tests {
		require.Equalf(t, out, TargetName(in), "TargetName(%q)", in)
	}
}

func TestCopy_RenamesAndPassesThrough(t *testing.T) {
	src := fstest.MapFS{
		"gitignore":         {Data: []byte("node_modules/\n")},
		"README-default.md": {Data: []byte("# readme\n")},
		"other.txt":         {Data: []byte("other\n")},
	}
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir(testRoot)

	written, err := NewCopier(mfs).Copy(src, testRoot)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{".gitignore", "README.md", "other.txt"}, written)

	data, err := mfs.ReadFile(testRoot + "/.gitignore")
	require.NoError(t, err)
	require.Equal(t, "node_modules/\n", string(data))

	data, err = mfs.ReadFile(testRoot + "/README.md")
	require.NoError(t, err)
	require.Equal(t, "# readme\n", string(data))

	require.True(t, mfs.Exists(testRoot+"/other.txt"))
	require.False(t, mfs.Exists(testRoot+"/gitignore"))
	require.False(t, mfs.Exists(testRoot+"/README-default.md"))
}

func TestCopy_PreservesDirectoriesAndRenamesNested(t *testing.T) {
	src := fstest.MapFS{
		"config/http.js":   {Data: []byte("http")},
		"routes/web.js":    {Data: []byte("web")},
		"nested/gitignore": {Data: []byte("x")},
		"empty":            {Mode: fs.ModeDir},
		"ignite.config.js": {Data: []byte("ignite")},
	}
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir(testRoot)

	_, err := NewCopier(mfs).Copy(src, testRoot)
	require.NoError(t, err)

	require.Equal(t, []string{
		testRoot + "/config",
		testRoot + "/config/http.js",
		testRoot + "/empty",
		testRoot + "/ignite.config.js",
		testRoot + "/nested",
		testRoot + "/nested/.gitignore",
		testRoot + "/routes",
		testRoot + "/routes/web.js",
	}, mfs.Paths(testRoot))
}

func TestCopy_WriteFailure(t *testing.T) {
	src := fstest.MapFS{"other.txt": {Data: []byte("x")}}
	mfs := filesystem.NewMockFileSystem()

	_, err := NewCopier(mfs).Copy(src, "/workspace/missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to write")
}

func TestTemplate_Bundled(t *testing.T) {
	tmpl := Template()

	for _, name := range []string{
		"gitignore",
		"env.example",
		"halukacli.js",
		"eslintrc.json",
		"README-default.md",
		"ignite.config.js",
		"app/app.js",
		"config/http.js",
		"routes/web.js",
	} {
		_, err := fs.Stat(tmpl, name)
		require.NoErrorf(t, err, "bundled template should contain %s", name)
	}
}

func TestCopy_BundledTemplate(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir(testRoot)

	written, err := NewCopier(mfs).Copy(Template(), testRoot)
	require.NoError(t, err)
	require.Contains(t, written, ".gitignore")
	require.Contains(t, written, ".env.example")
	require.Contains(t, written, "README.md")
	require.Contains(t, written, "app/app.js")
}
