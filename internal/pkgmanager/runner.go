package pkgmanager

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes a package manager invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the child process.
	Dir string
	// Env is appended to the parent environment.
	Env []string
}

// String returns the command line as shown to the user.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// CommandRunner provides an abstraction over child processes for testability
type CommandRunner interface {
	// Probe runs a short diagnostic command with its output discarded.
	Probe(ctx context.Context, name string, args ...string) error

	// Run runs cmd in the foreground with the configured standard streams.
	Run(ctx context.Context, cmd Command) error
}

// OSRunner implements CommandRunner using os/exec
type OSRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSRunner creates an OSRunner that inherits the parent's standard streams
func NewOSRunner() *OSRunner {
	return &OSRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (r *OSRunner) Probe(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func (r *OSRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	return cmd.Run()
}
