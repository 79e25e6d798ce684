package models

// InstallFlags controls how the installer builds package manager arguments
type InstallFlags struct {
	PackageManager  PackageManager
	Online          bool
	DevDependencies bool
}
