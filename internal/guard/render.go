package guard

import (
	"path/filepath"
	"strings"

	"github.com/haluker/create-app/internal/tui"
)

// Render returns the message shown when the parent directory is not writable.
func (e *PermissionError) Render() string {
	return "The app path is not writable, please check folder permissions and try again.\n" +
		"It looks like you don't have write permissions for this folder.\n"
}

// Render returns the conflict listing shown to the user.
func (e *ConflictError) Render() string {
	var b strings.Builder

	b.WriteString("The directory ")
	b.WriteString(tui.PathStyle.Render(filepath.Base(e.Dir)))
	b.WriteString(" contains files that could conflict:\n\n")
	for _, c := range e.Conflicts {
		if c.IsDir {
			b.WriteString("  " + tui.DirStyle.Render(c.Name) + "/\n")
		} else {
			b.WriteString("  " + c.Name + "\n")
		}
	}
	b.WriteString("\nEither try using a new directory name, or remove the files listed above.\n")

	return b.String()
}
