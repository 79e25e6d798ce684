// Package scaffold holds the bundled Haluka.js app template and copies it
// into a new project. The template is embedded with go:embed, which skips
// files whose names start with a dot; such files are bundled without the dot
// and renamed back while copying.
package scaffold
