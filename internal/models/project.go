package models

import "path/filepath"

// ProjectRequest describes a single scaffolding run.
//
// It is resolved once by the CLI and not modified afterwards.
type ProjectRequest struct {
	// RawName is the project path as typed by the user (argument or prompt)
	RawName string

	// Root is the absolute path of the project directory
	Root string

	// PackageManager installs the project dependencies
	PackageManager PackageManager

	// Offline forces offline install flags regardless of connectivity
	Offline bool
}

// NewProjectRequest creates a new ProjectRequest instance
func NewProjectRequest(rawName, root string, pm PackageManager) ProjectRequest {
	return ProjectRequest{
		RawName:        rawName,
		Root:           root,
		PackageManager: pm,
	}
}

// Name returns the project name, which is the basename of Root
func (r ProjectRequest) Name() string {
	return filepath.Base(r.Root)
}
