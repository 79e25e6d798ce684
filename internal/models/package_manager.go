package models

import (
	"fmt"
	"strings"
)

// PackageManager identifies the tool used to install dependencies
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
)

// IsValid checks if the package manager is one of the supported ones
func (p PackageManager) IsValid() bool {
	switch p {
	case PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM:
		return true
	default:
		return false
	}
}

// IsYarn reports whether p uses yarn-style command-line flags
func (p PackageManager) IsYarn() bool {
	return p == PackageManagerYarn
}

// String returns the string representation of PackageManager
func (p PackageManager) String() string {
	return string(p)
}

// RunCommand returns the command used to run a package script, e.g. "npm run dev" or "yarn dev".
func (p PackageManager) RunCommand(script string) string {
	if p.IsYarn() {
		return fmt.Sprintf("%s %s", p, script)
	}
	return fmt.Sprintf("%s run %s", p, script)
}

// ParsePackageManager parses a string into a PackageManager
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	if !pm.IsValid() {
		return "", fmt.Errorf("invalid package manager: %s (must be npm, yarn, or pnpm)", s)
	}
	return pm, nil
}
