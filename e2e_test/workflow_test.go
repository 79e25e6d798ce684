package e2e_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/haluker/create-app/internal/cli"
	"github.com/haluker/create-app/internal/config"
	"github.com/haluker/create-app/internal/filesystem"
	"github.com/haluker/create-app/internal/pkgmanager"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv(config.UserAgentEnv, "")
	for _, key := range []string{"USE_NPM", "USE_YARN", "USE_PNPM", "OFFLINE", "CHECK_ONLINE", "VERBOSE"} {
		t.Setenv(config.EnvPrefix+"_"+key, "")
	}
}

func execute(t *testing.T, runner pkgmanager.CommandRunner, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.Dependencies{
		FS:     filesystem.NewOSFileSystem(),
		Runner: runner,
		Stderr: &bytes.Buffer{},
	}, "test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestFullWorkflow(t *testing.T) {
	clearEnv(t)
	root := filepath.Join(t.TempDir(), "blog")
	runner := pkgmanager.NewMockRunner()
	runner.SetAvailable("yarn", true)

	out, err := execute(t, runner, root)
	require.NoError(t, err)
	require.Contains(t, out, "Using yarn.")

	// Manifest
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	require.Equal(t, "blog", gjson.GetBytes(data, "name").String())
	require.Equal(t, "0.1.0", gjson.GetBytes(data, "version").String())
	require.True(t, gjson.GetBytes(data, "private").Bool())
	require.Equal(t, "ignite", gjson.GetBytes(data, "scripts.start").String())

	// Install ran inside the project
	commands := runner.Commands()
	require.Len(t, commands, 1)
	require.Equal(t, root, commands[0].Dir)
	require.Contains(t, commands[0].Args, "github:haluker/haluka-ignite")

	// Template
	for _, name := range []string{".gitignore", ".env.example", ".halukacli.js", ".eslintrc.json", "README.md", "ignite.config.js", "app/app.js", "config/http.js", "routes/web.js"} {
		require.FileExists(t, filepath.Join(root, name))
	}
	require.NoFileExists(t, filepath.Join(root, "gitignore"))
	require.NoFileExists(t, filepath.Join(root, "README-default.md"))
}

func TestExistingRepositoryIsAccepted(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "LICENSE"), []byte("MIT"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "npm-debug.log"), nil, 0644))

	// t.TempDir basenames are numeric, which npm accepts.
	out, err := execute(t, pkgmanager.NewMockRunner(), root, "--use-npm")
	require.NoError(t, err, out)
	require.FileExists(t, filepath.Join(root, "package.json"))
	require.FileExists(t, filepath.Join(root, "LICENSE"))
}

func TestConflictLeavesDirectoryUntouched(t *testing.T) {
	clearEnv(t)
	root := filepath.Join(t.TempDir(), "site")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "random.log"), nil, 0644))

	runner := pkgmanager.NewMockRunner()
	out, err := execute(t, runner, root, "--use-npm")
	require.Error(t, err)

	require.Contains(t, out, "  random.log\n")
	require.Contains(t, out, "  src/\n")
	require.NoFileExists(t, filepath.Join(root, "package.json"))
	require.Empty(t, runner.Commands())
}

func TestReadOnlyParent(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("write permission bits are not enforced")
	}
	clearEnv(t)

	parent := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(parent, 0555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0755) })

	out, err := execute(t, pkgmanager.NewMockRunner(), filepath.Join(parent, "app"), "--use-npm")
	require.Error(t, err)
	require.Contains(t, out, "The app path is not writable")
	require.NoDirExists(t, filepath.Join(parent, "app"))
}
