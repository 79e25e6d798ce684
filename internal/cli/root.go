package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/haluker/create-app/internal/config"
	"github.com/haluker/create-app/internal/creator"
	"github.com/haluker/create-app/internal/filesystem"
	"github.com/haluker/create-app/internal/pkgmanager"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// CommandName is the executable name shown in usage and help text.
const CommandName = "create-haluka-app"

// Dependencies are the collaborators injected into the command.
type Dependencies struct {
	FS     filesystem.FileSystem
	Runner pkgmanager.CommandRunner
	Online creator.OnlineChecker

	// Prompter asks for a project path when none was given. A nil Prompter
	// disables prompting.
	Prompter Prompter

	// Stderr receives diagnostic logs. Defaults to the command's error stream.
	Stderr io.Writer
}

// NewRootCommand creates the root command
func NewRootCommand(deps Dependencies, version string) *cobra.Command {
	create := &CreateCommand{deps: deps}

	rootCmd := &cobra.Command{
		Use:   CommandName + " [project-directory]",
		Short: "Create a new Haluka.js application",
		Long: `Create a new Haluka.js application in the given directory.

The directory is created when missing and must not contain files that could
conflict with the generated project.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          create.Run,
	}

	config.BindFlags(rootCmd)

	return rootCmd
}

// Execute runs the root command against the real environment
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := Dependencies{
		FS:     filesystem.NewOSFileSystem(),
		Runner: pkgmanager.NewOSRunner(),
		Online: pkgmanager.NewOnlineChecker(),
		Stderr: os.Stderr,
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		deps.Prompter = NewHuhPrompter(os.Stdout)
	}

	rootCmd := NewRootCommand(deps, version)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}

	return nil
}
