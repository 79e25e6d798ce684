package pkgmanager

import (
	"context"
	"fmt"
	"io"

	"github.com/haluker/create-app/internal/logging"
	"github.com/haluker/create-app/internal/models"
	"github.com/haluker/create-app/internal/tui"
	"github.com/rs/zerolog"
)

// installEnv silences install-time funding and advertising banners.
var installEnv = []string{"ADBLOCK=1", "DISABLE_OPENCOLLECTIVE=1"}

// InstallError reports a package manager that exited unsuccessfully.
type InstallError struct {
	Command string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("%s has failed: %v", e.Command, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Installer runs the package manager for a project.
type Installer struct {
	runner CommandRunner
	out    io.Writer
	log    zerolog.Logger
}

// NewInstaller creates an Installer; notices are written to out.
func NewInstaller(runner CommandRunner, out io.Writer) *Installer {
	return &Installer{
		runner: runner,
		out:    out,
		log:    logging.GetLogger("installer"),
	}
}

// Install installs dependencies into root. With no dependencies it runs a
// plain install of the existing manifest.
func (i *Installer) Install(ctx context.Context, root string, dependencies []string, flags models.InstallFlags) error {
	if len(dependencies) == 0 && !flags.Online {
		_, _ = fmt.Fprintln(i.out, tui.WarningStyle.Render("You appear to be offline."))
		if flags.PackageManager.IsYarn() {
			_, _ = fmt.Fprintln(i.out, tui.WarningStyle.Render("Falling back to the local Yarn cache."))
		}
		_, _ = fmt.Fprintln(i.out)
	}

	cmd := Command{
		Name: flags.PackageManager.String(),
		Args: BuildArgs(root, dependencies, flags),
		Dir:  root,
		Env:  installEnv,
	}

	i.log.Debug().Str("command", cmd.String()).Str("dir", root).Msg("Running package manager")

	if err := i.runner.Run(ctx, cmd); err != nil {
		return &InstallError{Command: cmd.String(), Err: err}
	}

	return nil
}

// BuildArgs returns the package manager arguments for an install.
//
//	yarn add --exact [--offline] --cwd <root> [--dev] <deps...>
//	npm|pnpm install --save-exact --save|--save-dev <deps...>
//	<pm> install [--offline (yarn only)]
func BuildArgs(root string, dependencies []string, flags models.InstallFlags) []string {
	useYarn := flags.PackageManager.IsYarn()

	if len(dependencies) == 0 {
		args := []string{"install"}
		if !flags.Online && useYarn {
			args = append(args, "--offline")
		}
		return args
	}

	if useYarn {
		args := []string{"add", "--exact"}
		if !flags.Online {
			args = append(args, "--offline")
		}
		args = append(args, "--cwd", root)
		if flags.DevDependencies {
			args = append(args, "--dev")
		}
		return append(args, dependencies...)
	}

	args := []string{"install", "--save-exact"}
	if flags.DevDependencies {
		args = append(args, "--save-dev")
	} else {
		args = append(args, "--save")
	}
	return append(args, dependencies...)
}
