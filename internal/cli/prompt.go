package cli

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/haluker/create-app/internal/tui"
)

// Prompter asks the user for the project path.
type Prompter interface {
	// PromptProjectPath returns the entered path, or "" when the user aborted.
	PromptProjectPath(ctx context.Context, initial string, validate func(string) error) (string, error)
}

// HuhPrompter prompts with a huh input form.
type HuhPrompter struct {
	out   io.Writer
	theme *huh.Theme
}

// NewHuhPrompter creates a HuhPrompter drawing to out
func NewHuhPrompter(out io.Writer) *HuhPrompter {
	return &HuhPrompter{
		out:   out,
		theme: tui.NewHuhTheme(),
	}
}

func (p *HuhPrompter) PromptProjectPath(ctx context.Context, initial string, validate func(string) error) (string, error) {
	value := initial

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name of your application?").
				Value(&value).
				Validate(validate),
		),
	).
		WithTheme(p.theme).
		WithShowHelp(false).
		WithProgramOptions(tea.WithOutput(p.out))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}

	return value, nil
}
