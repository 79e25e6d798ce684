package guard

import (
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// allowedPatterns lists entries that may already exist in a new project
// directory. Patterns use .gitignore syntax.
var allowedPatterns = []string{
	".DS_Store",
	".git",
	".gitattributes",
	".gitignore",
	".gitlab-ci.yml",
	".hg",
	".hgcheck",
	".hgignore",
	".idea",
	".npmignore",
	".travis.yml",
	"LICENSE",
	"Thumbs.db",
	"docs",
	"mkdocs.yml",
	"npm-debug.log",
	"yarn-debug.log",
	"yarn-error.log",
	// IntelliJ IDEA based editors
	"*.iml",
}

var allowList = gitignore.New(
	strings.NewReader(strings.Join(allowedPatterns, "\n")),
	"",
	nil,
)

// Allowed reports whether a direct child of the project directory is benign.
func Allowed(name string, isDir bool) bool {
	match := allowList.Relative(name, isDir)
	return match != nil && match.Ignore()
}
