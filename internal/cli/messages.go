package cli

import (
	"fmt"
	"strings"

	"github.com/haluker/create-app/internal/naming"
	"github.com/haluker/create-app/internal/tui"
)

func renderUsage() string {
	var b strings.Builder

	b.WriteString("\nPlease specify the application path:\n")
	fmt.Fprintf(&b, "  %s %s\n", tui.CommandStyle.Render(CommandName), tui.PathStyle.Render("<project-directory>"))
	b.WriteString("For example:\n")
	fmt.Fprintf(&b, "  %s %s\n\n", tui.CommandStyle.Render(CommandName), tui.PathStyle.Render(defaultProjectPath))
	fmt.Fprintf(&b, "Run %s to see all options.\n", tui.CommandStyle.Render(CommandName+" --help"))

	return b.String()
}

func renderValidationError(err *naming.ValidationError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Could not create a project called %s because of npm naming restrictions:\n",
		tui.ErrorStyle.Render(fmt.Sprintf("%q", err.Name)))
	for _, problem := range err.Problems {
		fmt.Fprintf(&b, "    %s %s\n", tui.BulletStyle.Render("*"), problem)
	}

	return b.String()
}

func renderInstallFailure(command string) string {
	return fmt.Sprintf("\nAborting installation.\n  %s has failed.\n\n", tui.CommandStyle.Render(command))
}

func renderUnexpected(err error) string {
	return fmt.Sprintf("\nAborting installation.\n%s\n %v\n\n",
		tui.ErrorStyle.Render("Unexpected error. Please report it as a bug:"), err)
}
