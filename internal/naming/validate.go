// Package naming checks project names against npm package naming rules.
package naming

import (
	"fmt"
	"regexp"
	"strings"
)

const maxNameLength = 214

var blacklist = []string{
	"node_modules",
	"favicon.ico",
}

// coreModules are the Node.js built-in module names a package may not shadow.
var coreModules = []string{
	"assert", "async_hooks", "buffer", "child_process", "cluster", "console",
	"constants", "crypto", "dgram", "diagnostics_channel", "dns", "domain",
	"events", "fs", "http", "http2", "https", "inspector", "module", "net",
	"os", "path", "perf_hooks", "process", "punycode", "querystring",
	"readline", "repl", "stream", "string_decoder", "sys", "timers", "tls",
	"trace_events", "tty", "url", "util", "v8", "vm", "wasi",
	"worker_threads", "zlib",
}

var scopedName = regexp.MustCompile(`^(?:@([^/]+?)[/])?([^/]+?)$`)

// ValidationResult is the outcome of validating a project name.
type ValidationResult struct {
	Valid    bool
	Problems []string
}

// ValidationError reports a project name that cannot be used.
type ValidationError struct {
	Name     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, strings.Join(e.Problems, "; "))
}

// Validate applies npm's rules for new packages. Warnings count as problems,
// so a name is valid only when it produces neither errors nor warnings.
func Validate(name string) ValidationResult {
	errs, warnings := check(name)
	if len(errs) == 0 && len(warnings) == 0 {
		return ValidationResult{Valid: true}
	}

	problems := make([]string, 0, len(errs)+len(warnings))
	problems = append(problems, errs...)
	problems = append(problems, warnings...)
	return ValidationResult{Valid: false, Problems: problems}
}

// Err returns a *ValidationError for an invalid result, nil otherwise.
func (r ValidationResult) Err(name string) error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Name: name, Problems: r.Problems}
}

func check(name string) (errs, warnings []string) {
	if name == "" {
		return []string{"name length must be greater than zero"}, nil
	}

	if strings.HasPrefix(name, ".") {
		errs = append(errs, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		errs = append(errs, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		errs = append(errs, "name cannot contain leading or trailing spaces")
	}

	lower := strings.ToLower(name)
	for _, blocked := range blacklist {
		if lower == blocked {
			errs = append(errs, fmt.Sprintf("%s is a blacklisted name", blocked))
		}
	}

	for _, core := range coreModules {
		if lower == core {
			warnings = append(warnings, fmt.Sprintf("%s is a core module name", core))
		}
	}

	if len(name) > maxNameLength {
		warnings = append(warnings, fmt.Sprintf("name can no longer contain more than %d characters", maxNameLength))
	}

	if lower != name {
		warnings = append(warnings, "name can no longer contain capital letters")
	}

	segments := strings.Split(name, "/")
	if strings.ContainsAny(segments[len(segments)-1], "~'!()*") {
		warnings = append(warnings, `name can no longer contain special characters ("~'!()*")`)
	}

	if !urlFriendly(name) && !scopedURLFriendly(name) {
		errs = append(errs, "name can only contain URL-friendly characters")
	}

	return errs, warnings
}

func scopedURLFriendly(name string) bool {
	m := scopedName.FindStringSubmatch(name)
	if m == nil || m[1] == "" {
		return false
	}
	return urlFriendly(m[1]) && urlFriendly(m[2])
}

// urlFriendly reports whether encodeURIComponent would leave s unchanged.
func urlFriendly(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case strings.IndexByte("-_.!~*'()", c) >= 0:
		default:
			return false
		}
	}
	return true
}
