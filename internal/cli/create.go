// Package cli implements the create-haluka-app command.
package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/haluker/create-app/internal/config"
	"github.com/haluker/create-app/internal/creator"
	"github.com/haluker/create-app/internal/guard"
	"github.com/haluker/create-app/internal/logging"
	"github.com/haluker/create-app/internal/models"
	"github.com/haluker/create-app/internal/naming"
	"github.com/haluker/create-app/internal/pkgmanager"
	"github.com/spf13/cobra"
)

const defaultProjectPath = "my-haluka-app"

// ErrMissingProjectPath is returned when no project path was given or entered.
var ErrMissingProjectPath = errors.New("missing project directory")

// errReported marks errors whose message was already shown to the user.
var errReported = errors.New("reported")

// reportedError wraps an error that has been rendered for the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() []error { return []error{e.err, errReported} }

// CreateCommand handles project creation
type CreateCommand struct {
	deps Dependencies
}

// Run executes the create command
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cmd)
	if err != nil {
		return err
	}

	stderr := c.deps.Stderr
	if stderr == nil {
		stderr = cmd.ErrOrStderr()
	}
	logging.Setup(settings.Verbosity, stderr)
	log := logging.GetLogger("cli")

	rawPath := ""
	if len(args) > 0 {
		rawPath = strings.TrimSpace(args[0])
	}

	if rawPath == "" && c.deps.Prompter != nil {
		rawPath, err = c.deps.Prompter.PromptProjectPath(cmd.Context(), defaultProjectPath, validatePromptedPath)
		if err != nil {
			return fmt.Errorf("failed to prompt for project path: %w", err)
		}
		rawPath = strings.TrimSpace(rawPath)
	}

	if rawPath == "" {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), renderUsage())
		return &reportedError{err: ErrMissingProjectPath}
	}

	cwd, err := c.deps.FS.Getwd()
	if err != nil {
		return c.report(cmd, fmt.Errorf("failed to get working directory: %w", err))
	}
	root := resolve(cwd, rawPath)

	name := filepath.Base(root)
	if err := naming.Validate(name).Err(name); err != nil {
		return c.report(cmd, err)
	}

	pm := settings.PackageManager
	if pm == "" {
		pm = pkgmanager.NewDetector(c.deps.Runner, settings.UserAgent).Detect(cmd.Context())
	}
	log.Info().Str("root", root).Str("packageManager", pm.String()).Msg("Creating project")

	req := models.NewProjectRequest(rawPath, root, pm)
	req.Offline = settings.Offline

	options := []creator.Option{creator.WithWorkingDir(cwd)}
	if settings.CheckOnline && c.deps.Online != nil {
		options = append(options, creator.WithOnlineCheck(c.deps.Online))
	}

	installer := pkgmanager.NewInstaller(c.deps.Runner, cmd.OutOrStdout())
	app := creator.New(c.deps.FS, installer, cmd.OutOrStdout(), options...)

	if _, err := app.Create(cmd.Context(), req); err != nil {
		return c.report(cmd, err)
	}

	return nil
}

// resolve returns the absolute, cleaned project root for a user-supplied path.
func resolve(cwd, rawPath string) string {
	if filepath.IsAbs(rawPath) {
		return filepath.Clean(rawPath)
	}
	return filepath.Join(cwd, rawPath)
}

// report renders err for the user and marks it as reported.
func (c *CreateCommand) report(cmd *cobra.Command, err error) error {
	var (
		validationErr *naming.ValidationError
		permissionErr *guard.PermissionError
		conflictErr   *guard.ConflictError
		installErr    *pkgmanager.InstallError
	)

	switch {
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), renderValidationError(validationErr))
	case errors.As(err, &permissionErr):
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), permissionErr.Render())
	case errors.As(err, &conflictErr):
		_, _ = fmt.Fprint(cmd.OutOrStdout(), conflictErr.Render())
	case errors.As(err, &installErr):
		_, _ = fmt.Fprint(cmd.OutOrStdout(), renderInstallFailure(installErr.Command))
	default:
		_, _ = fmt.Fprint(cmd.OutOrStdout(), renderUnexpected(err))
	}

	return &reportedError{err: err}
}

func validatePromptedPath(input string) error {
	name := filepath.Base(filepath.Clean(strings.TrimSpace(input)))
	result := naming.Validate(name)
	if result.Valid {
		return nil
	}
	return fmt.Errorf("Invalid application name: %s", result.Problems[0])
}
