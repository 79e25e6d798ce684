package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/haluker/create-app/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBuildArgs(t *testing.T) {
	const root = "/workspace/my-app"

	tests := []struct {
		name     string
		deps     []string
		flags    models.InstallFlags
		expected []string
	}{
		{
			name:     "yarn offline",
			deps:     []string{"pkg-a"},
			flags:    models.InstallFlags{PackageManager: models.PackageManagerYarn, Online: false},
			expected: []string{"add", "--exact", "--offline", "--cwd", root, "pkg-a"},
		},
		{
			name:     "yarn online dev",
			deps:     []string{"pkg-a", "pkg-b"},
			flags:    models.InstallFlags{PackageManager: models.PackageManagerYarn, Online: true, DevDependencies: true},
			expected: []string{"add", "--exact", "--cwd", root, "--dev", "pkg-a", "pkg-b"},
		},
		{
			name:     "npm dev",
			deps:     []string{"pkg-a"},
			flags:    models.InstallFlags{PackageManager: models.PackageManagerNPM, DevDependencies: true},
			expected: []string{"install", "--save-exact", "--save-dev", "pkg-a"},
		},
		{
			name:     "npm offline has no offline flag",
			deps:     []string{"pkg-a"},
			flags:    models.InstallFlags{PackageManager: models.PackageManagerNPM, Online: false},
			expected: []string{"install", "--save-exact", "--save", "pkg-a"},
		},
		{
			name:     "pnpm",
			deps:     []string{"pkg-a"},
			flags:    models.InstallFlags{PackageManager: models.PackageManagerPNPM, Online: true},
			expected: []string{"install", "--save-exact", "--save", "pkg-a"},
		},
		{
			name:     "no deps yarn offline",
			flags:    models.InstallFlags{PackageManager: models.PackageManagerYarn},
			expected: []string{"install", "--offline"},
		},
		{
			name:     "no deps npm offline",
			flags:    models.InstallFlags{PackageManager: models.PackageManagerNPM},
			expected: []string{"install"},
		},
		{
			name:     "no deps yarn online",
			flags:    models.InstallFlags{PackageManager: models.PackageManagerYarn, Online: true},
			expected: []string{"install"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, BuildArgs(root, tt.deps, tt.flags))
		})
	}
}

func TestInstaller_RunsInProjectDirectory(t *testing.T) {
	runner := NewMockRunner()
	var out bytes.Buffer

	flags := models.InstallFlags{PackageManager: models.PackageManagerNPM, Online: true}
	err := NewInstaller(runner, &out).Install(context.Background(), "/workspace/my-app", []string{"pkg-a"}, flags)
	require.NoError(t, err)

	cmds := runner.Commands()
	require.Len(t, cmds, 1)
	require.Equal(t, "npm", cmds[0].Name)
	require.Equal(t, "/workspace/my-app", cmds[0].Dir)
	require.Equal(t, []string{"ADBLOCK=1", "DISABLE_OPENCOLLECTIVE=1"}, cmds[0].Env)
	require.Empty(t, out.String())
}

func TestInstaller_FailureCarriesCommand(t *testing.T) {
	runner := NewMockRunner()
	exitErr := errors.New("exit status 1")
	runner.SetFailure("yarn", exitErr)

	flags := models.InstallFlags{PackageManager: models.PackageManagerYarn, Online: true}
	err := NewInstaller(runner, &bytes.Buffer{}).Install(context.Background(), "/w/app", []string{"pkg-a"}, flags)

	var installErr *InstallError
	require.True(t, errors.As(err, &installErr))
	require.Equal(t, "yarn add --exact --cwd /w/app pkg-a", installErr.Command)
	require.ErrorIs(t, err, exitErr)
}

func TestInstaller_OfflineNotice(t *testing.T) {
	tests := []struct {
		name     string
		pm       models.PackageManager
		yarnNote bool
	}{
		{"yarn", models.PackageManagerYarn, true},
		{"npm", models.PackageManagerNPM, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			flags := models.InstallFlags{PackageManager: tt.pm}

			err := NewInstaller(NewMockRunner(), &out).Install(context.Background(), "/w/app", nil, flags)
			require.NoError(t, err)

			require.Contains(t, out.String(), "You appear to be offline.")
			if tt.yarnNote {
				require.Contains(t, out.String(), "Falling back to the local Yarn cache.")
			} else {
				require.NotContains(t, out.String(), "Yarn cache")
			}
		})
	}
}

func TestCommand_String(t *testing.T) {
	require.Equal(t, "npm", Command{Name: "npm"}.String())
	require.Equal(t, "npm install --save", Command{Name: "npm", Args: []string{"install", "--save"}}.String())
}
