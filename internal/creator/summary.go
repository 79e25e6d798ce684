package creator

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/haluker/create-app/internal/tui"
)

const summaryTemplate = `{{ success "Success!" }} Created {{ .Name }} at {{ .Root }}
Inside that directory, you can run following commands:

  {{ command (.PackageManager.RunCommand "dev") }}
{{ "Starts the development server." | indent 4 }}

  {{ command (.PackageManager.RunCommand "build") }}
{{ "Builds the app for production." | indent 4 }}

  {{ command (printf "%s start" .PackageManager) }}
{{ "Runs the built app." | indent 4 }}

We suggest that you begin by creating .env file:

  {{ command "cd" }} {{ .CdPath }}
  {{ command "haluka run" }} create-env

`

var summaryTmpl = template.Must(
	template.New("summary").
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{
			"success": func(s string) string { return tui.SuccessStyle.Render(s) },
			"command": func(s string) string { return tui.CommandStyle.Render(s) },
		}).
		Parse(summaryTemplate),
)

type summaryData struct {
	*Result
	CdPath string
}

// RenderSummary renders the next-steps message. The cd hint uses the bare
// project name when the project sits directly inside cwd.
func RenderSummary(result *Result, cwd string) (string, error) {
	cdPath := result.Root
	if cwd != "" && filepath.Join(cwd, result.Name) == result.Root {
		cdPath = result.Name
	}

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, summaryData{Result: result, CdPath: cdPath}); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return buf.String(), nil
}
